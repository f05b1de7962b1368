package review

import "github.com/abhisek/mathcontent/internal/content"

// Config controls the behavior of the Reviewer.
type Config struct {
	// Rules is the ordered rule chain. Feedback appears in this order.
	Rules []Rule
}

// DefaultConfig returns the standard rule chain.
func DefaultConfig() Config {
	return Config{
		Rules: []Rule{
			&TopicRule{},
			&GradeLevelRule{
				MaxGrade:      content.MaxSimpleGrade,
				AdvancedTerms: []string{"obtuse", "perimeter"},
			},
			&MCQCountRule{Want: 3},
			&MCQAnswerRule{},
		},
	}
}
