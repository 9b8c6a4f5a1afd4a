package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/ldsim/internal/config"
	"github.com/san-kum/ldsim/internal/descriptor"
	"github.com/san-kum/ldsim/internal/descriptors"
	"github.com/san-kum/ldsim/internal/export"
	"github.com/san-kum/ldsim/internal/integrators"
	"github.com/san-kum/ldsim/internal/ode"
	"github.com/san-kum/ldsim/internal/systems"
	"github.com/san-kum/ldsim/internal/tui"
	"github.com/san-kum/ldsim/internal/viz"
)

var (
	configFile string
	preset     string
	descName   string
	method     string
	direction  string
	integrator string
	dt         float64
	t0, t1     float64
	adaptive   bool
	tolerance  float64
	workers    int
	xMin, xMax float64
	yMin, yMax float64
	nx, ny     int
	outFile    string
	svgFile    string
	live       bool
	scanRow    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ldsim",
		Short: "lagrangian descriptor fields for dynamical systems",
	}

	runCmd := &cobra.Command{
		Use:   "run [system]",
		Short: "compute a descriptor field",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runField,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&descName, "descriptor", "arclength", "pointwise descriptor function")
	runCmd.Flags().StringVar(&method, "method", "augmented", "computation method (augmented, postprocessed)")
	runCmd.Flags().StringVar(&direction, "direction", "both", "traversal direction (forward, backward, both)")
	runCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&t0, "t0", 0, "span start")
	runCmd.Flags().Float64Var(&t1, "t1", config.DefaultT1, "span end")
	runCmd.Flags().BoolVar(&adaptive, "adaptive", false, "adaptive stepping")
	runCmd.Flags().Float64Var(&tolerance, "tol", 1e-6, "adaptive tolerance")
	runCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = all CPUs)")
	runCmd.Flags().Float64Var(&xMin, "xmin", -1.6, "grid x minimum")
	runCmd.Flags().Float64Var(&xMax, "xmax", 1.6, "grid x maximum")
	runCmd.Flags().Float64Var(&yMin, "ymin", -1.0, "grid y minimum")
	runCmd.Flags().Float64Var(&yMax, "ymax", 1.0, "grid y maximum")
	runCmd.Flags().IntVar(&nx, "nx", 60, "grid points along x")
	runCmd.Flags().IntVar(&ny, "ny", 40, "grid points along y")
	runCmd.Flags().StringVar(&outFile, "out", "", "export field as csv")
	runCmd.Flags().StringVar(&svgFile, "svg", "", "export field as svg")
	runCmd.Flags().BoolVar(&live, "live", false, "show live progress")
	runCmd.Flags().IntVar(&scanRow, "scan", -1, "also plot one mesh row as a line scan")

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list systems and descriptor functions",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("systems:")
			for _, name := range systems.List() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("descriptors:")
			for _, name := range descriptors.Names() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list presets for a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if names == nil {
				return fmt.Errorf("no presets for system %q", args[0])
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, systemsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildConfig(args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	system := cfg.System
	if len(args) > 0 {
		system = args[0]
	}

	if preset != "" {
		p := config.GetPreset(system, preset)
		if p == nil {
			return nil, fmt.Errorf("no preset %q for system %q", preset, system)
		}
		cfg = p
	}

	cfg.System = system
	if configFile == "" && preset == "" {
		cfg.Descriptor = descName
		cfg.Method = method
		cfg.Direction = direction
		cfg.Integrator = integrator
		cfg.Dt = dt
		cfg.T0 = t0
		cfg.T1 = t1
		cfg.Adaptive = adaptive
		cfg.Tolerance = tolerance
		cfg.Workers = workers
		cfg.Grid = config.GridConfig{XMin: xMin, XMax: xMax, NX: nx, YMin: yMin, YMax: yMax, NY: ny}
	}

	return cfg, nil
}

func runField(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(args)
	if err != nil {
		return err
	}

	sys, err := systems.New(cfg.System)
	if err != nil {
		return err
	}

	m := descriptors.ByName(cfg.Descriptor)
	if m == nil {
		return fmt.Errorf("unknown descriptor %q (accepted: %v)", cfg.Descriptor, descriptors.Names())
	}

	dir, err := descriptor.ParseDirection(cfg.Direction)
	if err != nil {
		return err
	}
	meth, err := descriptor.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}

	solver, err := integrators.New(cfg.Integrator)
	if err != nil {
		return err
	}

	g, err := cfg.BuildGrid()
	if err != nil {
		return err
	}

	solveCfg := ode.DefaultConfig()
	solveCfg.Dt = cfg.Dt
	solveCfg.Adaptive = cfg.Adaptive
	solveCfg.Tolerance = cfg.Tolerance

	template := ode.NewProblem(sys, sys.DefaultState(), nil, ode.Span{T0: cfg.T0, T1: cfg.T1})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts := []descriptor.Option{
		descriptor.WithDirection(dir),
		descriptor.WithMethod(meth),
		descriptor.WithSolverConfig(solveCfg),
		descriptor.WithWorkers(cfg.Workers),
	}

	start := time.Now()

	var field *descriptor.Field
	if live {
		field, err = tui.Run(cancel, func(progress func(done, total int)) (*descriptor.Field, error) {
			prob, err := descriptor.New(template, m, g, append(opts, descriptor.WithProgress(progress))...)
			if err != nil {
				return nil, err
			}
			return prob.Solve(ctx, solver)
		})
	} else {
		var prob *descriptor.Problem
		prob, err = descriptor.New(template, m, g, opts...)
		if err != nil {
			return err
		}
		field, err = prob.Solve(ctx, solver)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s %s field, %d points, %s\n",
		cfg.System, field.Direction, cfg.Method, field.Len(), time.Since(start).Round(time.Millisecond))
	fmt.Print(viz.Heatmap(field, cfg.Grid.NX, cfg.Grid.NY))

	if scanRow >= 0 {
		fmt.Println(viz.Scan(field, cfg.Grid.NX, cfg.Grid.NY, scanRow))
	}

	if outFile != "" {
		if err := export.CSV(outFile, g, field); err != nil {
			return err
		}
		fmt.Printf("exported %s\n", outFile)
	}

	if svgFile != "" {
		if err := export.SVG(svgFile, field, cfg.Grid.NX, cfg.Grid.NY, 4); err != nil {
			return err
		}
		fmt.Printf("exported %s\n", svgFile)
	}

	return nil
}
