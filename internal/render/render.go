// Package render prints pipeline payloads either as JSON or as a labelled
// terminal view.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcontent/internal/content"
	"github.com/abhisek/mathcontent/internal/pipeline"
	"github.com/abhisek/mathcontent/internal/review"
	"github.com/abhisek/mathcontent/internal/ui/theme"
)

// Section titles for the labelled view.
const (
	GeneratorTitle = "Generator Output"
	ReviewerTitle  = "Reviewer Feedback"
	RefinedTitle   = "Refined Generator Output"
)

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// Content renders generated content as a titled card.
func Content(title string, c content.GeneratedContent) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render("Explanation"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(c.Explanation))

	if len(c.MCQs) == 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("No MCQs."))
	}
	for i, q := range c.MCQs {
		b.WriteString("\n\n")
		b.WriteString(theme.Label.Render(fmt.Sprintf("MCQ %d", i+1)))
		b.WriteString(" ")
		b.WriteString(theme.Body.Render(q.Question))
		for j, opt := range q.Options {
			line := fmt.Sprintf("  %c) %s", 'A'+j, opt)
			b.WriteString("\n")
			if opt == q.Answer {
				b.WriteString(theme.Answer.Render(line + "  ✓"))
			} else {
				b.WriteString(theme.Body.Render(line))
			}
		}
	}

	return section(title, b.String())
}

// Review renders a reviewer result as a titled card.
func Review(title string, r review.Result) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render("Status"))
	b.WriteString(" ")
	if r.Passed() {
		b.WriteString(theme.Pass.Render(string(r.Status)))
	} else {
		b.WriteString(theme.Fail.Render(string(r.Status)))
	}

	if len(r.Feedback) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Label.Render("Feedback"))
		for _, f := range r.Feedback {
			b.WriteString("\n")
			b.WriteString(theme.Body.Render("  • " + f))
		}
	}

	return section(title, b.String())
}

// Run renders all payloads of a pipeline run in order.
func Run(run *pipeline.Run) string {
	parts := []string{
		theme.Hint.Render(fmt.Sprintf("run %s · grade %d · topic %q", run.ID, run.Request.Grade, run.Request.Topic)),
		Content(GeneratorTitle, run.Generated),
		Review(ReviewerTitle, run.Review),
	}
	if run.Refined != nil {
		parts = append(parts, Content(RefinedTitle, *run.Refined))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func section(title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(title),
		theme.Card.Render(body),
	)
}
