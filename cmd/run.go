package cmd

import (
	"fmt"

	"github.com/abhisek/mathcontent/internal/render"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate, review, and refine once if the review fails",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := requestFromFlags(cmd)
		if err != nil {
			return err
		}

		_, _, p, err := newPipeline()
		if err != nil {
			return err
		}

		run, err := p.Run(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("pipeline run: %w", err)
		}

		if jsonOutput() {
			return render.JSON(cmd.OutOrStdout(), run)
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.Run(run))
		return nil
	},
}

func init() {
	addRequestFlags(runCmd)
}
