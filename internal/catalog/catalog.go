// Package catalog holds the fixed topic templates the generator draws from.
// Topics live in a YAML document so that adding one is a data change.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/abhisek/mathcontent/internal/content"
	"gopkg.in/yaml.v3"
)

//go:embed topics.yaml
var defaultTopics []byte

// document mirrors the on-disk YAML layout.
type document struct {
	Topics []topicDoc `yaml:"topics"`
}

type topicDoc struct {
	Keyword      string          `yaml:"keyword"`
	Name         string          `yaml:"name"`
	Explanations explanationsDoc `yaml:"explanations"`
	MCQs         []mcqDoc        `yaml:"mcqs"`
}

type explanationsDoc struct {
	Standard string `yaml:"standard"`
	Advanced string `yaml:"advanced"`
	Refined  string `yaml:"refined"`
}

type mcqDoc struct {
	Question string   `yaml:"question"`
	Options  []string `yaml:"options"`
	Answer   string   `yaml:"answer"`
}

// Catalog is an ordered, immutable set of topic templates.
// It is safe for concurrent use.
type Catalog struct {
	topics []content.Template
}

// Default returns the built-in catalog (angle, shape, fraction, perimeter).
// The embedded document is parsed once; an invalid one panics.
var Default = sync.OnceValue(func() *Catalog {
	c, err := Parse(defaultTopics)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded topics invalid: %v", err))
	}
	return c
})

// Load reads and validates a catalog file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	topics := make([]content.Template, 0, len(doc.Topics))
	for _, td := range doc.Topics {
		topics = append(topics, td.template())
	}

	if err := validateTopics(topics); err != nil {
		return nil, err
	}
	return &Catalog{topics: topics}, nil
}

func (td topicDoc) template() content.Template {
	mcqs := make([]content.MCQ, len(td.MCQs))
	for i, m := range td.MCQs {
		mcqs[i] = content.MCQ{
			Question: m.Question,
			Options:  m.Options,
			Answer:   m.Answer,
		}
	}
	return content.Template{
		Keyword:  td.Keyword,
		Name:     td.Name,
		Standard: td.Explanations.Standard,
		Advanced: td.Explanations.Advanced,
		Refined:  td.Explanations.Refined,
		MCQs:     mcqs,
	}
}

// Match returns the first topic, in catalog order, whose keyword is a
// substring of the lower-cased, trimmed topic.
func (c *Catalog) Match(topic string) (content.Template, bool) {
	t := strings.ToLower(strings.TrimSpace(topic))
	if t == "" {
		return content.Template{}, false
	}
	for _, tmpl := range c.topics {
		if strings.Contains(t, tmpl.Keyword) {
			return tmpl, true
		}
	}
	return content.Template{}, false
}

// Topics returns all templates in match order.
func (c *Catalog) Topics() []content.Template {
	out := make([]content.Template, len(c.topics))
	copy(out, c.topics)
	return out
}

// Keywords returns the recognized keywords in match order.
func (c *Catalog) Keywords() []string {
	kws := make([]string, len(c.topics))
	for i, t := range c.topics {
		kws[i] = t.Keyword
	}
	return kws
}

// Len returns the number of topics.
func (c *Catalog) Len() int { return len(c.topics) }
