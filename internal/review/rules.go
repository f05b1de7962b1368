package review

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/mathcontent/internal/content"
)

// TopicRule checks the topic itself. Its three branches are exclusive:
// an empty topic, an unsupported topic, or content that does not mention
// any word of the topic.
type TopicRule struct{}

func (r *TopicRule) Name() string { return "topic" }

func (r *TopicRule) Check(in Input) []string {
	switch {
	case in.Topic == "":
		return []string{"Topic is empty and cannot be validated."}
	case strings.Contains(in.Explanation, content.UnsupportedMarker):
		return []string{fmt.Sprintf("Topic '%s' is not supported yet.", in.Topic)}
	}

	// Content with no MCQs is not checked for alignment.
	if len(in.Content.MCQs) == 0 {
		return nil
	}
	for _, word := range strings.Fields(in.Topic) {
		if strings.Contains(in.Explanation, word) {
			return nil
		}
	}
	return []string{fmt.Sprintf("Generated content does not clearly align with the topic '%s'.", in.Topic)}
}

// GradeLevelRule flags explanations that use advanced vocabulary for
// young learners.
type GradeLevelRule struct {
	// MaxGrade is the highest grade the rule applies to.
	MaxGrade int

	// AdvancedTerms are lower-case words considered too advanced.
	AdvancedTerms []string
}

func (r *GradeLevelRule) Name() string { return "grade-level" }

func (r *GradeLevelRule) Check(in Input) []string {
	if in.Grade > r.MaxGrade {
		return nil
	}
	for _, term := range r.AdvancedTerms {
		if strings.Contains(in.Explanation, term) {
			return []string{fmt.Sprintf("Some concepts may be too advanced for Grade %d.", r.MaxGrade)}
		}
	}
	return nil
}

// MCQCountRule requires a fixed number of MCQs whenever any are present.
type MCQCountRule struct {
	Want int
}

func (r *MCQCountRule) Name() string { return "mcq-count" }

func (r *MCQCountRule) Check(in Input) []string {
	n := len(in.Content.MCQs)
	if n > 0 && n != r.Want {
		return []string{fmt.Sprintf("Each topic must have exactly %d MCQs.", r.Want)}
	}
	return nil
}

// MCQAnswerRule requires each MCQ's answer to be one of its options.
// It reports one message per offending MCQ, numbered from 1.
type MCQAnswerRule struct{}

func (r *MCQAnswerRule) Name() string { return "mcq-answer" }

func (r *MCQAnswerRule) Check(in Input) []string {
	var out []string
	for i, q := range in.Content.MCQs {
		if !slices.Contains(q.Options, q.Answer) {
			out = append(out, fmt.Sprintf("MCQ %d has an invalid correct answer.", i+1))
		}
	}
	return out
}
