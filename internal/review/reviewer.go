package review

import (
	"strings"

	"github.com/abhisek/mathcontent/internal/content"
)

// Reviewer validates generated content against a rule chain.
// It holds no mutable state and is safe for concurrent use.
type Reviewer struct {
	config Config
}

// New creates a Reviewer with the given config.
func New(cfg Config) *Reviewer {
	return &Reviewer{config: cfg}
}

// Review runs every rule and collects their feedback. It never fails.
func (r *Reviewer) Review(c content.GeneratedContent, grade int, topic string) Result {
	in := Input{
		Content:     c,
		Grade:       grade,
		Topic:       strings.ToLower(strings.TrimSpace(topic)),
		Explanation: strings.ToLower(c.Explanation),
	}

	feedback := []string{}
	for _, rule := range r.config.Rules {
		feedback = append(feedback, rule.Check(in)...)
	}

	status := StatusPass
	if len(feedback) > 0 {
		status = StatusFail
	}
	return Result{Status: status, Feedback: feedback}
}

// RuleNames returns the configured rule names in order.
func (r *Reviewer) RuleNames() []string {
	names := make([]string, len(r.config.Rules))
	for i, rule := range r.config.Rules {
		names[i] = rule.Name()
	}
	return names
}
