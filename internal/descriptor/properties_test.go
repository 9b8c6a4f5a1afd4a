package descriptor_test

import (
	"context"
	"errors"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ldsim/internal/descriptor"
	"github.com/san-kum/ldsim/internal/descriptors"
	"github.com/san-kum/ldsim/internal/grid"
	"github.com/san-kum/ldsim/internal/integrators"
	"github.com/san-kum/ldsim/internal/ode"
	"github.com/san-kum/ldsim/internal/systems"
)

func saddleTemplate() ode.Problem {
	sys := systems.NewSaddle()
	return ode.NewProblem(sys, sys.DefaultState(), nil, ode.Span{T0: 0, T1: 1})
}

func testGrid() grid.Grid {
	g, err := grid.Mesh(
		grid.Axis{Min: -1, Max: 1, N: 4},
		grid.Axis{Min: -1, Max: 1, N: 4},
	)
	Expect(err).NotTo(HaveOccurred())
	return g
}

func rk4() ode.Solver { return integrators.NewSolver(integrators.NewRK4()) }

// jitterSolver delays each solve by a random amount so subproblems
// complete in an order unrelated to their build order.
type jitterSolver struct {
	inner ode.Solver
	rng   *rand.Rand
}

func (j *jitterSolver) Solve(ctx context.Context, prob ode.Problem, cfg ode.Config) (*ode.Trajectory, error) {
	time.Sleep(time.Duration(j.rng.Intn(3)) * time.Millisecond)
	return j.inner.Solve(ctx, prob, cfg)
}

var _ = Describe("descriptor fields", func() {
	var g grid.Grid

	BeforeEach(func() {
		g = testGrid()
	})

	Describe("direction and record shape", func() {
		It("produces one finite paired record per grid point for both+augmented", func() {
			prob, err := descriptor.New(saddleTemplate(), descriptors.Arclength(), g)
			Expect(err).NotTo(HaveOccurred())

			field, err := prob.Solve(context.Background(), rk4())
			Expect(err).NotTo(HaveOccurred())
			Expect(field.Len()).To(Equal(g.Len()))

			for _, rec := range field.Records {
				Expect(rec.HasFwd).To(BeTrue())
				Expect(rec.HasBwd).To(BeTrue())
				Expect(rec.Finite()).To(BeTrue())
			}
		})

		It("emits no backward field for direction forward, and vice versa", func() {
			for _, m := range []descriptor.Method{descriptor.Augmented, descriptor.Postprocessed} {
				fwd, err := descriptor.New(saddleTemplate(), descriptors.Arclength(), g,
					descriptor.WithDirection(descriptor.Forward), descriptor.WithMethod(m))
				Expect(err).NotTo(HaveOccurred())

				field, err := fwd.Solve(context.Background(), rk4())
				Expect(err).NotTo(HaveOccurred())
				for _, rec := range field.Records {
					Expect(rec.HasFwd).To(BeTrue())
					Expect(rec.HasBwd).To(BeFalse())
				}

				bwd, err := descriptor.New(saddleTemplate(), descriptors.Arclength(), g,
					descriptor.WithDirection(descriptor.Backward), descriptor.WithMethod(m))
				Expect(err).NotTo(HaveOccurred())

				field, err = bwd.Solve(context.Background(), rk4())
				Expect(err).NotTo(HaveOccurred())
				for _, rec := range field.Records {
					Expect(rec.HasFwd).To(BeFalse())
					Expect(rec.HasBwd).To(BeTrue())
				}
			}
		})
	})

	Describe("the M == 1 reference scenario", func() {
		It("accumulates the span magnitude in both branches", func() {
			for _, m := range []descriptor.Method{descriptor.Augmented, descriptor.Postprocessed} {
				prob, err := descriptor.New(saddleTemplate(), descriptors.Unit(), g,
					descriptor.WithMethod(m))
				Expect(err).NotTo(HaveOccurred())

				field, err := prob.Solve(context.Background(), rk4())
				Expect(err).NotTo(HaveOccurred())

				for _, rec := range field.Records {
					Expect(rec.LFwd).To(BeNumerically("~", 1.0, 1e-9))
					Expect(rec.LBwd).To(BeNumerically("~", 1.0, 1e-9))
				}
			}
		})
	})

	Describe("strategy equivalence", func() {
		It("produces the same field from augmentation and quadrature", func() {
			aug, err := descriptor.New(saddleTemplate(), descriptors.Arclength(), g,
				descriptor.WithMethod(descriptor.Augmented))
			Expect(err).NotTo(HaveOccurred())

			post, err := descriptor.New(saddleTemplate(), descriptors.Arclength(), g,
				descriptor.WithMethod(descriptor.Postprocessed))
			Expect(err).NotTo(HaveOccurred())

			augField, err := aug.Solve(context.Background(), rk4())
			Expect(err).NotTo(HaveOccurred())
			postField, err := post.Solve(context.Background(), rk4())
			Expect(err).NotTo(HaveOccurred())

			for i := range augField.Records {
				Expect(postField.Records[i].LFwd).To(BeNumerically("~", augField.Records[i].LFwd, 1e-3))
				Expect(postField.Records[i].LBwd).To(BeNumerically("~", augField.Records[i].LBwd, 1e-3))
			}
		})
	})

	Describe("construction validation", func() {
		It("rejects an unknown method before any work", func() {
			prob, err := descriptor.New(saddleTemplate(), descriptors.Unit(), g,
				descriptor.WithMethod(descriptor.Method(42)))
			Expect(prob).To(BeNil())

			var cfgErr *descriptor.ConfigurationError
			Expect(errors.As(err, &cfgErr)).To(BeTrue())
			Expect(cfgErr.Option).To(Equal("method"))
			Expect(cfgErr.Error()).To(ContainSubstring("42"))
			Expect(cfgErr.Error()).To(ContainSubstring("augmented"))
			Expect(cfgErr.Error()).To(ContainSubstring("postprocessed"))
		})

		It("rejects an unknown direction before any work", func() {
			prob, err := descriptor.New(saddleTemplate(), descriptors.Unit(), g,
				descriptor.WithDirection(descriptor.Direction(7)))
			Expect(prob).To(BeNil())

			var cfgErr *descriptor.ConfigurationError
			Expect(errors.As(err, &cfgErr)).To(BeTrue())
			Expect(cfgErr.Option).To(Equal("direction"))
			Expect(cfgErr.Error()).To(ContainSubstring("forward"))
		})

		It("rejects a grid that does not match the system dimension", func() {
			bad := grid.FromStates([]ode.State{{1, 2, 3}})
			_, err := descriptor.New(saddleTemplate(), descriptors.Unit(), bad)
			Expect(err).To(HaveOccurred())
		})

		It("rejects the postprocessed method without a quadrature rule", func() {
			prob, err := descriptor.New(saddleTemplate(), descriptors.Unit(), g,
				descriptor.WithMethod(descriptor.Postprocessed),
				descriptor.WithQuadrature(nil))
			Expect(prob).To(BeNil())
			Expect(err).To(MatchError(ContainSubstring("quadrature")))
		})
	})

	Describe("pairing under parallel execution", func() {
		It("pairs the k-th forward run with the k-th backward run regardless of completion order", func() {
			newProb := func(workers int) *descriptor.Problem {
				prob, err := descriptor.New(saddleTemplate(), descriptors.Arclength(), g,
					descriptor.WithMethod(descriptor.Postprocessed),
					descriptor.WithWorkers(workers))
				Expect(err).NotTo(HaveOccurred())
				Expect(prob.Subproblems()).To(Equal(2 * g.Len()))
				return prob
			}

			sequential, err := newProb(1).Solve(context.Background(), rk4())
			Expect(err).NotTo(HaveOccurred())

			jittered := &jitterSolver{inner: rk4(), rng: rand.New(rand.NewSource(1))}
			parallel, err := newProb(8).Solve(context.Background(), jittered)
			Expect(err).NotTo(HaveOccurred())

			Expect(parallel.Records).To(Equal(sequential.Records))
		})
	})

	Describe("determinism", func() {
		It("yields identical fields when the same problem is solved twice", func() {
			prob, err := descriptor.New(saddleTemplate(), descriptors.PNorm(2), g)
			Expect(err).NotTo(HaveOccurred())

			first, err := prob.Solve(context.Background(), rk4())
			Expect(err).NotTo(HaveOccurred())
			second, err := prob.Solve(context.Background(), rk4())
			Expect(err).NotTo(HaveOccurred())

			Expect(second.Records).To(Equal(first.Records))
		})
	})

	Describe("failure propagation", func() {
		It("surfaces a solver failure instead of a partial field", func() {
			blowup := ode.FieldFunc{
				F: func(x ode.State, p ode.Params, t float64) ode.State {
					return ode.State{x[0] * x[0], x[1]}
				},
				N: 2,
			}
			template := ode.NewProblem(blowup, ode.State{0, 0}, nil, ode.Span{T0: 0, T1: 5})
			hot := grid.FromStates([]ode.State{{0.1, 0}, {1e160, 0}})

			prob, err := descriptor.New(template, descriptors.Unit(), hot)
			Expect(err).NotTo(HaveOccurred())

			field, err := prob.Solve(context.Background(), integrators.NewSolver(integrators.NewEuler()))
			Expect(field).To(BeNil())
			Expect(errors.Is(err, ode.ErrInvalidState)).To(BeTrue())
		})
	})
})
