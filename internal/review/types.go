package review

import "github.com/abhisek/mathcontent/internal/content"

// Status is the overall verdict of a review.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// Result is the reviewer's verdict on one piece of generated content.
type Result struct {
	// Status is StatusFail iff Feedback is non-empty.
	Status Status `json:"status"`

	// Feedback holds one human-readable message per failed check, in rule
	// order. Empty (never nil) on pass.
	Feedback []string `json:"feedback"`
}

// Passed reports whether no rule fired.
func (r Result) Passed() bool { return r.Status == StatusPass }

// Input is what every rule sees. Topic is trimmed and lower-cased;
// Explanation is lower-cased.
type Input struct {
	Content     content.GeneratedContent
	Grade       int
	Topic       string
	Explanation string
}
