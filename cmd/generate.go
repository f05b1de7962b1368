package cmd

import (
	"fmt"

	"github.com/abhisek/mathcontent/internal/content"
	"github.com/abhisek/mathcontent/internal/render"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an explanation and MCQs for a topic",
	Long: `Generate an explanation and three MCQs for a grade and topic.

Passing --feedback (any text, repeatable) requests the refined variant, as the
pipeline does after a failed review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := requestFromFlags(cmd)
		if err != nil {
			return err
		}
		feedback, _ := cmd.Flags().GetStringArray("feedback")

		gen, _, _, err := newPipeline()
		if err != nil {
			return err
		}

		ref := content.Refine(feedback)
		out, sel := gen.GenerateWithSelection(req, ref)

		if jsonOutput() {
			return render.JSON(cmd.OutOrStdout(), out)
		}

		title := render.GeneratorTitle
		if ref.Requested() {
			title = render.RefinedTitle
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.Content(title, out))
		if sel.Outcome == content.OutcomeMatched {
			fmt.Fprintf(cmd.OutOrStdout(), "topic %s · %s variant\n", sel.Keyword, sel.Variant)
		}
		return nil
	},
}

func init() {
	addRequestFlags(generateCmd)
	generateCmd.Flags().StringArrayP("feedback", "f", nil, "Reviewer feedback to refine against (repeatable)")
}
