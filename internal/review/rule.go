package review

// Rule is one independent check in the review chain.
// Implementations should be stateless and safe for concurrent use.
type Rule interface {
	// Name returns a short identifier for this rule (for logging),
	// e.g. "topic", "grade-level", "mcq-count".
	Name() string

	// Check returns zero or more feedback messages. A rule never stops
	// the chain; every rule runs regardless of earlier findings.
	Check(in Input) []string
}
