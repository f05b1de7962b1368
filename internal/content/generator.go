package content

import (
	"fmt"
	"strings"
)

const (
	// EmptyTopicMessage is returned when the topic is blank. It is terminal;
	// refinement cannot fix it.
	EmptyTopicMessage = "Please provide a valid topic to generate content."

	// UnsupportedMarker appears in every unsupported-topic explanation.
	// The reviewer keys off it.
	UnsupportedMarker = "not supported"
)

// Generator produces explanations and MCQs for a topic.
type Generator interface {
	// Generate never fails: every input maps to a valid GeneratedContent.
	Generate(req Request, ref Refinement) GeneratedContent
}

// Outcome classifies what a generation call matched.
type Outcome string

const (
	OutcomeMatched     Outcome = "matched"
	OutcomeEmptyTopic  Outcome = "empty-topic"
	OutcomeUnsupported Outcome = "unsupported"
)

// Selection describes how a GeneratedContent was chosen.
type Selection struct {
	Outcome Outcome
	Keyword string  // set when Outcome is OutcomeMatched
	Variant Variant // set when Outcome is OutcomeMatched
}

// TemplateGenerator implements Generator using a static topic catalog.
// It holds no mutable state and is safe for concurrent use.
type TemplateGenerator struct {
	topics TopicSource
}

// NewGenerator creates a TemplateGenerator backed by the given topics.
func NewGenerator(topics TopicSource) *TemplateGenerator {
	return &TemplateGenerator{topics: topics}
}

// Generate produces content for req.
func (g *TemplateGenerator) Generate(req Request, ref Refinement) GeneratedContent {
	out, _ := g.GenerateWithSelection(req, ref)
	return out
}

// GenerateWithSelection is Generate plus a description of which template
// and variant were used.
func (g *TemplateGenerator) GenerateWithSelection(req Request, ref Refinement) (GeneratedContent, Selection) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return GeneratedContent{
			Explanation: EmptyTopicMessage,
			MCQs:        []MCQ{},
		}, Selection{Outcome: OutcomeEmptyTopic}
	}

	tmpl, ok := g.topics.Match(topic)
	if !ok {
		return GeneratedContent{
			Explanation: UnsupportedMessage(topic),
			MCQs:        []MCQ{},
		}, Selection{Outcome: OutcomeUnsupported}
	}

	text, variant := tmpl.Explanation(req.Grade, ref)
	out := GeneratedContent{
		Explanation: text,
		MCQs:        tmpl.Questions(),
	}
	return out, Selection{Outcome: OutcomeMatched, Keyword: tmpl.Keyword, Variant: variant}
}

// UnsupportedMessage builds the explanation for an unrecognized topic.
// The topic is embedded as typed, minus surrounding whitespace.
func UnsupportedMessage(topic string) string {
	return fmt.Sprintf("The topic '%s' is %s yet. Please try another basic math topic.", topic, UnsupportedMarker)
}
