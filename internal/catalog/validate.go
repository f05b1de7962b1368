package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/mathcontent/internal/content"
)

// ValidationError lists every problem found in a catalog document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog: %s", strings.Join(e.Problems, "; "))
}

// validateTopics performs the checks the schema cannot express.
// Returns a *ValidationError describing all problems found, or nil.
func validateTopics(topics []content.Template) error {
	var errs []string

	seen := make(map[string]bool, len(topics))
	for _, t := range topics {
		if seen[t.Keyword] {
			errs = append(errs, fmt.Sprintf("duplicate keyword: %q", t.Keyword))
		}
		seen[t.Keyword] = true

		for i, q := range t.MCQs {
			if !slices.Contains(q.Options, q.Answer) {
				errs = append(errs, fmt.Sprintf("topic %q MCQ %d: answer %q is not one of its options", t.Keyword, i+1, q.Answer))
			}
		}
	}

	// An earlier keyword contained in a later one shadows it forever,
	// e.g. "angle" before "triangle".
	for i, later := range topics {
		for _, earlier := range topics[:i] {
			if earlier.Keyword != later.Keyword && strings.Contains(later.Keyword, earlier.Keyword) {
				errs = append(errs, fmt.Sprintf("keyword %q is unreachable: shadowed by earlier keyword %q", later.Keyword, earlier.Keyword))
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
