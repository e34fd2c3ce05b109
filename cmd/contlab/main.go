package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/contlab/internal/config"
	"github.com/san-kum/contlab/internal/continuation"
	"github.com/san-kum/contlab/internal/integrators"
	"github.com/san-kum/contlab/internal/ivp"
	"github.com/san-kum/contlab/internal/shooting"
	"github.com/san-kum/contlab/internal/systems"
	"github.com/spf13/cobra"
)

var (
	u0Flag     string
	p0Flag     string
	tspanFlag  string
	namesFlag  string
	method     string
	reltol     float64
	abstol     float64
	configFile string
	// Plot options
	component int
	width     int
	height    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "contlab",
		Short: "single-shooting problems for numerical continuation",
	}

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list built-in systems",
		RunE:  listSystems,
	}

	evalCmd := &cobra.Command{
		Use:   "eval [system]",
		Short: "register a shooting problem and evaluate its residual",
		Args:  cobra.ExactArgs(1),
		RunE:  evalResidual,
	}
	addProblemFlags(evalCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [system]",
		Short: "integrate over the span and plot the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrajectory,
	}
	addProblemFlags(plotCmd)
	plotCmd.Flags().IntVar(&component, "component", -1, "state component to plot (-1 for all)")
	plotCmd.Flags().IntVar(&width, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&height, "height", 10, "plot height")

	rootCmd.AddCommand(systemsCmd, evalCmd, plotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addProblemFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&u0Flag, "u0", "", "initial state, comma separated")
	cmd.Flags().StringVar(&p0Flag, "p0", "", "parameters, comma separated")
	cmd.Flags().StringVar(&tspanFlag, "tspan", "", "time span: T or t0,t1")
	cmd.Flags().StringVar(&namesFlag, "names", "", "parameter names, comma separated")
	cmd.Flags().StringVar(&method, "method", "rk45", "integration method")
	cmd.Flags().Float64Var(&reltol, "reltol", config.DefaultRelTol, "relative tolerance")
	cmd.Flags().Float64Var(&abstol, "abstol", config.DefaultAbsTol, "absolute tolerance")
	cmd.Flags().StringVar(&configFile, "config", "", "problem file (yaml)")
}

func listSystems(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIM\tPARAMETERS\tTSPAN")

	for _, name := range systems.List() {
		sys, err := systems.Get(name)
		if err != nil {
			return err
		}
		ts := sys.DefaultTSpan()
		fmt.Fprintf(w, "%s\t%d\t%s\t(%.4g, %.4g)\n",
			sys.Name(),
			sys.Dim(),
			strings.Join(sys.ParamNames(), ","),
			ts[0], ts[1],
		)
	}

	return w.Flush()
}

// resolveProblem merges system defaults, an optional config file, and
// flags (flags win) into one problem description.
func resolveProblem(cmd *cobra.Command, name string) (systems.System, *config.Config, error) {
	sys, err := systems.Get(name)
	if err != nil {
		return nil, nil, err
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg.System = name

	if cfg.U0 == nil {
		cfg.U0 = sys.DefaultState()
	}
	if cfg.P0 == nil {
		cfg.P0 = sys.DefaultParams()
	}
	if cfg.TSpan == nil {
		cfg.TSpan = sys.DefaultTSpan()
	}
	if cfg.ParameterNames == nil {
		cfg.ParameterNames = prefixed(name, sys.ParamNames())
	}

	if cmd.Flags().Changed("u0") {
		if cfg.U0, err = parseFloats(u0Flag); err != nil {
			return nil, nil, err
		}
	}
	if cmd.Flags().Changed("p0") {
		if cfg.P0, err = parseFloats(p0Flag); err != nil {
			return nil, nil, err
		}
	}
	if cmd.Flags().Changed("tspan") {
		if cfg.TSpan, err = parseFloats(tspanFlag); err != nil {
			return nil, nil, err
		}
	}
	if cmd.Flags().Changed("names") {
		cfg.ParameterNames = strings.Split(namesFlag, ",")
	}
	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
	if cmd.Flags().Changed("reltol") {
		cfg.RelTol = reltol
	}
	if cmd.Flags().Changed("abstol") {
		cfg.AbsTol = abstol
	}

	return sys, cfg, nil
}

func evalResidual(cmd *cobra.Command, args []string) error {
	sys, cfg, err := resolveProblem(cmd, args[0])
	if err != nil {
		return err
	}

	solver, err := integrators.Get(cfg.Method)
	if err != nil {
		return err
	}

	prob := continuation.NewProblem()
	err = shooting.Register(prob, sys.Name(), sys.Field(), cfg.U0, cfg.P0, cfg.TSpan, shooting.Options{
		Method:         solver,
		RelTol:         cfg.RelTol,
		AbsTol:         cfg.AbsTol,
		ParameterNames: cfg.ParameterNames,
	})
	if err != nil {
		return err
	}

	out := make([]float64, len(cfg.U0))
	if err := prob.EvalFunc(sys.Name(), out); err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("shooting residual: %s (%s)", sys.Name(), cfg.Method)))
	for i, r := range out {
		fmt.Printf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("r[%d]", i)),
			valueStyle.Render(fmt.Sprintf("% .10e", r)),
		)
	}
	fmt.Printf("  %s %s\n",
		labelStyle.Render("|r| "),
		valueStyle.Render(fmt.Sprintf("% .10e", ivp.State(out).Norm())),
	)

	fmt.Println()
	fmt.Println(titleStyle.Render("parameters (inactive by default)"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, prm := range prob.Parameters() {
		state := "inactive"
		if prm.Active {
			state = "active"
		}
		fmt.Fprintf(w, "  %s\t%.6g\t%s\n", prm.Name, prm.Value, state)
	}
	return w.Flush()
}

func plotTrajectory(cmd *cobra.Command, args []string) error {
	sys, cfg, err := resolveProblem(cmd, args[0])
	if err != nil {
		return err
	}

	solver, err := integrators.Get(cfg.Method)
	if err != nil {
		return err
	}

	t0, t1 := shooting.NormalizeTSpan(cfg.TSpan)
	sol, err := solver.Solve(sys.Field(), cfg.U0, cfg.P0, t0, t1, ivp.Options{
		AbsTol:    cfg.AbsTol,
		RelTol:    cfg.RelTol,
		SaveSteps: true,
		SaveStart: true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("system: %s\n", sys.Name())
	fmt.Printf("samples: %d\n\n", len(sol.States))

	for idx := 0; idx < len(cfg.U0); idx++ {
		if component >= 0 && idx != component {
			continue
		}
		data := make([]float64, len(sol.States))
		for i := range sol.States {
			data[i] = sol.States[i][idx]
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(fmt.Sprintf("u%d vs time", idx+1)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func prefixed(name string, params []string) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = name + "." + p
	}
	return out
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}
