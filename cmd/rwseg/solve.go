package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rwseg/internal/telemetry"
	"github.com/katalvlaran/rwseg/randomwalker"
)

type solveFlags struct {
	out        string
	metricsOut string
	mode       string
	tol        float64
	maxIter    int
	workers    int
	hard       bool
	clamp      bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve GRAPH.json",
		Short: "Propagate seed labels over a graph or raster document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args[0], f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.out, "output", "o", "", "write the result here instead of stdout")
	fl.StringVar(&f.metricsOut, "metrics-out", "", "write solve metrics (Prometheus text format) to this file")
	fl.StringVar(&f.mode, "mode", "", "solver mode: bf, cg, cg_j, cg_mg")
	fl.Float64Var(&f.tol, "tol", 0, "relative residual tolerance of iterative modes")
	fl.IntVar(&f.maxIter, "max-iter", 0, "CG iteration cap per class (0: mode default)")
	fl.IntVar(&f.workers, "workers", 0, "classes solved concurrently (0: GOMAXPROCS)")
	fl.BoolVar(&f.hard, "hard", false, "omit the probability volume, keep the segmentation only")
	fl.BoolVar(&f.clamp, "clamp", false, "clamp probabilities to [0,1]")

	return cmd
}

// applyFlags overrides configuration fields for the flags that were set.
func (a *app) applyFlags(cmd *cobra.Command, f *solveFlags) error {
	fl := cmd.Flags()
	s := &a.cfg.Solver
	if fl.Changed("mode") {
		s.Mode = f.mode
	}
	if fl.Changed("tol") {
		s.Tolerance = f.tol
	}
	if fl.Changed("max-iter") {
		s.MaxIterations = f.maxIter
	}
	if fl.Changed("workers") {
		s.Workers = f.workers
	}
	if fl.Changed("hard") {
		s.FullProbabilities = !f.hard
	}
	if fl.Changed("clamp") {
		s.Clamp = f.clamp
	}

	return a.cfg.Validate()
}

func (a *app) runSolve(cmd *cobra.Command, path string, f *solveFlags) error {
	if err := a.applyFlags(cmd, f); err != nil {
		return err
	}
	p, err := loadProblem(path)
	if err != nil {
		return err
	}
	opts, err := a.cfg.SolverOptions()
	if err != nil {
		return err
	}
	collector, err := telemetry.NewCollector(a.cfg.Metrics.Namespace)
	if err != nil {
		return err
	}
	opts = append(opts, randomwalker.WithLogger(a.logger), randomwalker.WithObserver(collector))

	res, err := randomwalker.SolveGraph(cmd.Context(), p.graph, p.labels, opts...)
	if err != nil {
		return err
	}
	a.logger.Info("solved",
		zap.String("input", path),
		zap.Stringer("mode", res.Mode),
		zap.Int("nodes", p.graph.N),
		zap.Int("classes", res.Classes),
		zap.Int("warnings", len(res.Warnings)),
		zap.Duration("elapsed", res.Elapsed),
	)

	doc, err := newResultDocument(res, p.grid)
	if err != nil {
		return err
	}
	if err = writeOutput(cmd.OutOrStdout(), f.out, doc); err != nil {
		return err
	}
	if f.metricsOut == "" {
		return nil
	}
	mf, err := os.Create(f.metricsOut)
	if err != nil {
		return err
	}
	if err = collector.WriteText(mf); err != nil {
		_ = mf.Close()
		return err
	}

	return mf.Close()
}

// writeOutput encodes v as indented JSON to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, v any) error {
	w := stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("rwseg: encode result: %w", err)
	}

	return nil
}
