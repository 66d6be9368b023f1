package onboarding

import (
	"errors"
	"fmt"
	"strings"
)

// Kind discriminates how a question is asked and validated.
type Kind string

const (
	KindText        Kind = "text"
	KindEmail       Kind = "email"
	KindPhone       Kind = "phone"
	KindNumber      Kind = "number"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multiselect"
	KindLongText    Kind = "longtext"
)

// Dependency gates a question on a previously answered field. The question is
// only asked when the dependency field holds one of AnyOf; an empty AnyOf
// accepts any non-empty answer.
type Dependency struct {
	Field string   `json:"field"`
	AnyOf []string `json:"any_of,omitempty"`
}

// Question is one step of the onboarding conversation. Definitions are static
// and ordered; the order defines the step sequence.
type Question struct {
	ID          string      `json:"id"`
	Field       string      `json:"field"`
	Label       string      `json:"label"`
	Prompt      string      `json:"prompt"`
	Kind        Kind        `json:"kind"`
	Options     []string    `json:"options,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
	Required    bool        `json:"required"`
	DependsOn   *Dependency `json:"depends_on,omitempty"`
	Tip         string      `json:"tip,omitempty"`
	Skippable   bool        `json:"skippable,omitempty"`
}

// Catalog is the immutable ordered question list.
type Catalog struct {
	questions []Question
	byField   map[string]int
}

var errDuplicateField = errors.New("duplicate question field")

func NewCatalog(questions []Question) (Catalog, error) {
	byField := make(map[string]int, len(questions))
	for i, q := range questions {
		field := strings.TrimSpace(q.Field)
		if field == "" {
			return Catalog{}, fmt.Errorf("question %d has an empty field", i)
		}
		if _, ok := byField[field]; ok {
			return Catalog{}, fmt.Errorf("%w: %s", errDuplicateField, field)
		}
		byField[field] = i
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return Catalog{questions: qs, byField: byField}, nil
}

func MustCatalog(questions []Question) Catalog {
	c, err := NewCatalog(questions)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Catalog) Len() int {
	return len(c.questions)
}

func (c Catalog) At(i int) (Question, bool) {
	if i < 0 || i >= len(c.questions) {
		return Question{}, false
	}
	return c.questions[i], true
}

func (c Catalog) ByField(field string) (Question, bool) {
	i, ok := c.byField[field]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

func (c Catalog) IndexOf(field string) (int, bool) {
	i, ok := c.byField[field]
	return i, ok
}

// Required returns the required questions in catalog order.
func (c Catalog) Required() []Question {
	out := make([]Question, 0, len(c.questions))
	for _, q := range c.questions {
		if q.Required {
			out = append(out, q)
		}
	}
	return out
}
