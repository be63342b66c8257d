package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rwseg/segeval"
)

func newEvaluateCmd(a *app) *cobra.Command {
	var seedsPath, out string
	cmd := &cobra.Command{
		Use:   "evaluate RESULT.json TRUTH.json",
		Short: "Score a segmentation against ground truth (accuracy, ARI, MI, VI)",
		Long: `Score a segmentation against ground truth.

Both files may be result documents (their "segmentation" is used) or bare
JSON arrays of labels. With --seeds, seeded nodes of that graph document are
excluded from scoring.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, err := loadLabels(args[0])
			if err != nil {
				return err
			}
			truth, err := loadLabels(args[1])
			if err != nil {
				return err
			}
			var seeds []int
			if seedsPath != "" {
				p, err := loadProblem(seedsPath)
				if err != nil {
					return err
				}
				seeds = p.labels
			}
			rep, err := segeval.Evaluate(pred, truth, seeds)
			if err != nil {
				return err
			}
			a.logger.Debug("evaluated",
				zap.Int("scored", rep.N),
				zap.Float64("accuracy", rep.Accuracy),
				zap.Float64("ari", rep.AdjustedRandIndex),
			)

			return writeOutput(cmd.OutOrStdout(), out, rep)
		},
	}
	cmd.Flags().StringVar(&seedsPath, "seeds", "", "graph document whose seeds are masked out")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the report here instead of stdout")

	return cmd
}
