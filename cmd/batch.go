package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/mathcontent/internal/content"
	"github.com/abhisek/mathcontent/internal/render"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var batchCmd = &cobra.Command{
	Use:   "batch <requests.yaml>",
	Short: "Run the pipeline for many requests concurrently",
	Long: `Run the pipeline for every request in a YAML (or JSON) list:

  - grade: 2
    topic: perimeter
  - grade: 5
    topic: Types of angles

Runs are independent; results are printed in input order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reqs, err := readRequests(args[0])
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("concurrency")
		if !cmd.Flags().Changed("concurrency") {
			limit = cfg.BatchConcurrency
		}

		_, _, p, err := newPipeline()
		if err != nil {
			return err
		}

		runs, err := p.RunBatch(cmd.Context(), reqs, limit)
		if err != nil {
			return fmt.Errorf("batch run: %w", err)
		}

		if jsonOutput() {
			return render.JSON(cmd.OutOrStdout(), runs)
		}
		for _, run := range runs {
			fmt.Fprintln(cmd.OutOrStdout(), render.Run(run))
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().IntP("concurrency", "c", 0, "Maximum concurrent runs (overrides MATHCONTENT_BATCH_CONCURRENCY; 0 = unbounded)")
}

func readRequests(path string) ([]content.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read requests: %w", err)
	}

	var reqs []content.Request
	if err := yaml.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("decode requests: %w", err)
	}
	for i, r := range reqs {
		if err := checkGrade(r.Grade); err != nil {
			return nil, fmt.Errorf("request %d: %w", i+1, err)
		}
	}
	return reqs, nil
}
