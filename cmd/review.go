package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/mathcontent/internal/content"
	"github.com/abhisek/mathcontent/internal/render"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <content.json|->",
	Short: "Review generated content read from a JSON file or stdin",
	Long: `Review content produced by "generate -o json" (or any JSON object with
"explanation" and "mcqs") for the given grade and topic.

A failing review is reported, not treated as an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := requestFromFlags(cmd)
		if err != nil {
			return err
		}

		c, err := readContent(cmd, args[0])
		if err != nil {
			return err
		}

		_, rev, _, err := newPipeline()
		if err != nil {
			return err
		}
		res := rev.Review(c, req.Grade, req.Topic)

		if jsonOutput() {
			return render.JSON(cmd.OutOrStdout(), res)
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.Review(render.ReviewerTitle, res))
		return nil
	},
}

func init() {
	addRequestFlags(reviewCmd)
}

func readContent(cmd *cobra.Command, path string) (content.GeneratedContent, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return content.GeneratedContent{}, fmt.Errorf("open content: %w", err)
		}
		defer f.Close()
		r = f
	}

	var c content.GeneratedContent
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return content.GeneratedContent{}, fmt.Errorf("decode content: %w", err)
	}
	if c.MCQs == nil {
		c.MCQs = []content.MCQ{}
	}
	return c, nil
}
