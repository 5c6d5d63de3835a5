// Package calc defines the shared contract every calculator in the catalog
// implements: a schema-validated flat input record, a pure closed-form
// computation, and a classified result with static guide content.
package calc

import "context"

// Category groups calculators in the catalog.
type Category string

const (
	CategoryFinance     Category = "finance"
	CategoryHealth      Category = "health"
	CategoryEngineering Category = "engineering"
	CategoryConvert     Category = "convert"
	CategorySports      Category = "sports"
)

// Categories returns all catalog categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFinance,
		CategoryHealth,
		CategoryEngineering,
		CategoryConvert,
		CategorySports,
	}
}

// Info identifies a calculator in the catalog.
type Info struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

// FieldType is the wire type of a schema field.
type FieldType string

const (
	TypeNumber  FieldType = "number"
	TypeInteger FieldType = "integer"
	TypeEnum    FieldType = "enum"
	TypeBool    FieldType = "bool"
)

// Field describes one input of a calculator schema.
type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Unit     string    `json:"unit,omitempty"`
	Required bool      `json:"required"`
	Min      *float64  `json:"min,omitempty"`
	Max      *float64  `json:"max,omitempty"`
	Enum     []string  `json:"enum,omitempty"`
	Default  any       `json:"default,omitempty"`
	Help     string    `json:"help,omitempty"`
}

// Schema is the ordered field set of a calculator's input record.
type Schema struct {
	Fields []Field `json:"fields"`
}

// Input is a validated flat input record. Values are stored as the Go type
// matching the field type: float64, int, string, or bool.
type Input map[string]any

// Number returns the float64 value of a number field. Integer fields are
// widened. Missing fields return 0; validation guarantees required fields
// are present.
func (in Input) Number(name string) float64 {
	switch v := in[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// Int returns the int value of an integer field.
func (in Input) Int(name string) int {
	switch v := in[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// Enum returns the string value of an enum field.
func (in Input) Enum(name string) string {
	s, _ := in[name].(string)
	return s
}

// Bool returns the value of a bool field.
func (in Input) Bool(name string) bool {
	b, _ := in[name].(bool)
	return b
}

// Value is one computed output of a calculator.
type Value struct {
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// Tier is a classification of one computed metric: a hard-coded numeric
// range mapped to a descriptive label and advice text.
type Tier struct {
	Metric string `json:"metric"`
	Label  string `json:"label"`
	Advice string `json:"advice,omitempty"`
}

// Table is an optional tabular section of a result, such as an amortization
// schedule or a set of training zones.
type Table struct {
	Title   string     `json:"title,omitempty"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Result is the flat output record of one computation.
type Result struct {
	Values []Value  `json:"values"`
	Tiers  []Tier   `json:"tiers,omitempty"`
	Table  *Table   `json:"table,omitempty"`
	Notes  []string `json:"notes,omitempty"`
}

// Value returns the named value, or 0 if absent. Convenience for tests and
// the export layer.
func (r *Result) Value(name string) float64 {
	for _, v := range r.Values {
		if v.Name == name {
			return v.Value
		}
	}
	return 0
}

// Tier returns the tier for the named metric, or a zero Tier.
func (r *Result) Tier(metric string) Tier {
	for _, t := range r.Tiers {
		if t.Metric == metric {
			return t
		}
	}
	return Tier{}
}

// GuideSection is one block of educational text.
type GuideSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// FAQ is one question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Guide is the static educational content attached to a calculator.
type Guide struct {
	Summary  string         `json:"summary"`
	Sections []GuideSection `json:"sections,omitempty"`
	FAQs     []FAQ          `json:"faqs,omitempty"`
	Related  []string       `json:"related,omitempty"`
}

// Calculator is one self-contained form+formula+display component.
// Compute must be pure and deterministic over validated inputs.
type Calculator interface {
	Info() Info
	Schema() Schema
	Compute(in Input) (*Result, error)
	Guide() Guide
}

// Evaluate validates raw input against the calculator's schema and, only if
// validation passes, runs the computation. This is the single entry point
// used by the API, the CLI, and the export layer.
func Evaluate(ctx context.Context, c Calculator, raw map[string]any) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	in, err := c.Schema().Validate(raw)
	if err != nil {
		return nil, err
	}
	return c.Compute(in)
}
