package descriptor

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/san-kum/ldsim/internal/ode"
)

// Orchestrator drives a strategy's subproblems through a solver and
// assembles the ordered field. It performs no numerical integration
// itself.
type Orchestrator struct {
	strategy Strategy
	dir      Direction
	cfg      ode.Config
	workers  int
	progress func(done, total int)
}

func NewOrchestrator(strategy Strategy, dir Direction, cfg ode.Config, workers int, progress func(done, total int)) *Orchestrator {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Orchestrator{
		strategy: strategy,
		dir:      dir,
		cfg:      cfg,
		workers:  workers,
		progress: progress,
	}
}

type outcome struct {
	rec Record
	key Key
	err error
}

// Run executes all subproblems, possibly concurrently and in any order,
// and reduces the contributions into a field keyed by pair index. The
// result is therefore independent of completion order.
func (o *Orchestrator) Run(ctx context.Context, solver ode.Solver) (*Field, error) {
	count := o.strategy.Count()
	outs := make([]outcome, count)

	indices := make(chan int)
	var wg sync.WaitGroup
	var done int64

	workers := o.workers
	if workers > count {
		workers = count
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				outs[i] = o.solveOne(ctx, solver, i)
				if o.progress != nil {
					o.progress(int(atomic.AddInt64(&done, 1)), count)
				}
			}
		}()
	}

	for i := 0; i < count; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()

	for i := range outs {
		if outs[i].err != nil {
			return nil, outs[i].err
		}
	}

	acc := make([]Record, o.strategy.Records())
	for i := range outs {
		o.strategy.Reduce(acc, outs[i].rec, outs[i].key)
	}

	return &Field{Direction: o.dir, Records: acc}, nil
}

func (o *Orchestrator) solveOne(ctx context.Context, solver ode.Solver, i int) outcome {
	prob, key := o.strategy.Build(i)

	traj, err := solver.Solve(ctx, prob, o.cfg)
	if err != nil {
		return outcome{key: key, err: fmt.Errorf("descriptor: subproblem %d (pair %d): %w", i, key.Pair, err)}
	}

	rec, err := o.strategy.Extract(traj, i)
	if err != nil {
		return outcome{key: key, err: err}
	}
	return outcome{rec: rec, key: key}
}
