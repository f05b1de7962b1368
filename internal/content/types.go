package content

// Request is what a caller supplies to the generator.
type Request struct {
	// Grade is the learner's grade level (typically 1-5).
	// Advisory only: out-of-range values are accepted and only affect
	// explanation verbosity.
	Grade int `json:"grade"`

	// Topic is free text, e.g. "Types of angles". Matched case-insensitively
	// against the catalog keywords after trimming.
	Topic string `json:"topic"`
}

// MCQ is a single multiple-choice question.
type MCQ struct {
	Question string `json:"question"`

	// Options holds exactly 4 distinct choices, one of which is Answer.
	Options []string `json:"options"`

	// Answer is the text of the correct option.
	Answer string `json:"answer"`
}

// GeneratedContent is the generator's output for one request.
type GeneratedContent struct {
	Explanation string `json:"explanation"`

	// MCQs has exactly 3 entries for a recognized topic and is empty
	// (never nil) otherwise.
	MCQs []MCQ `json:"mcqs"`
}

// Refinement carries reviewer feedback into a second generation call.
// Only its presence matters to the generator; the feedback text itself
// is never inspected.
type Refinement struct {
	Feedback []string
}

// NoRefinement requests the initial, unrefined content.
var NoRefinement = Refinement{}

// Refine builds a Refinement from reviewer feedback.
func Refine(feedback []string) Refinement {
	return Refinement{Feedback: feedback}
}

// Requested reports whether a refinement variant should be selected.
func (r Refinement) Requested() bool {
	return len(r.Feedback) > 0
}

// Variant names which explanation variant a topic produced.
type Variant string

const (
	VariantStandard Variant = "standard" // default text, simple tier when tiered
	VariantAdvanced Variant = "advanced" // grade above the simple tier
	VariantRefined  Variant = "refined"  // selected by a refinement pass
)

// Tier is a coarse grade bucket used to select explanation complexity.
type Tier int

const (
	TierSimple   Tier = iota // grade <= MaxSimpleGrade
	TierAdvanced             // grade > MaxSimpleGrade
)

// MaxSimpleGrade is the highest grade that still gets the simple tier.
const MaxSimpleGrade = 3

// GradeTier buckets a grade into a Tier.
func GradeTier(grade int) Tier {
	if grade <= MaxSimpleGrade {
		return TierSimple
	}
	return TierAdvanced
}

func (t Tier) String() string {
	switch t {
	case TierSimple:
		return "simple"
	case TierAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}
