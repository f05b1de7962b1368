package content

import "slices"

// Template is the fixed content record for one recognized topic keyword.
type Template struct {
	// Keyword is the lower-case substring that selects this template.
	Keyword string

	// Name is a display name, e.g. "Types of Angles".
	Name string

	// Standard is always present. It is the simple-tier text for topics
	// that also define Advanced.
	Standard string

	// Advanced, when non-empty, replaces Standard for grades above
	// MaxSimpleGrade.
	Advanced string

	// Refined, when non-empty, replaces both on a refinement pass,
	// regardless of grade. Topics without one return the same text again.
	Refined string

	// MCQs is the topic's fixed question set. It does not vary by grade
	// or refinement.
	MCQs []MCQ
}

// Explanation selects the explanation text for a grade and refinement.
func (t Template) Explanation(grade int, ref Refinement) (string, Variant) {
	if ref.Requested() && t.Refined != "" {
		return t.Refined, VariantRefined
	}
	if GradeTier(grade) == TierAdvanced && t.Advanced != "" {
		return t.Advanced, VariantAdvanced
	}
	return t.Standard, VariantStandard
}

// Questions returns a deep copy of the template's MCQs.
func (t Template) Questions() []MCQ {
	out := make([]MCQ, len(t.MCQs))
	for i, q := range t.MCQs {
		out[i] = MCQ{
			Question: q.Question,
			Options:  slices.Clone(q.Options),
			Answer:   q.Answer,
		}
	}
	return out
}

// TopicSource looks up the template for a free-text topic.
type TopicSource interface {
	// Match returns the first template whose keyword is contained in the
	// lower-cased topic.
	Match(topic string) (Template, bool)
}
