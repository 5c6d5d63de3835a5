package calculators

import (
	"context"
	"testing"

	"github.com/calcsuite/calcsuite/internal/calc"
)

func newCatalog(t *testing.T) *calc.Registry {
	t.Helper()
	reg := calc.NewRegistry()
	if err := RegisterAllTo(reg); err != nil {
		t.Fatalf("RegisterAllTo: %v", err)
	}
	return reg
}

func TestRegisterAllTo(t *testing.T) {
	reg := newCatalog(t)
	if got := reg.Count(); got != 32 {
		t.Errorf("Count() = %d, want 32", got)
	}

	counts := reg.CategoryCounts()
	want := map[calc.Category]int{
		calc.CategoryFinance:     10,
		calc.CategoryHealth:      7,
		calc.CategoryEngineering: 4,
		calc.CategoryConvert:     6,
		calc.CategorySports:      5,
	}
	for cat, n := range want {
		if counts[cat] != n {
			t.Errorf("category %s: %d calculators, want %d", cat, counts[cat], n)
		}
	}
}

// Every calculator must carry a valid schema, a classifier whose bands
// partition the number line, and a non-empty guide.
func TestCatalogWellFormed(t *testing.T) {
	reg := newCatalog(t)
	for _, info := range reg.List("") {
		c, err := reg.Get(info.Slug)
		if err != nil {
			t.Fatalf("Get(%q): %v", info.Slug, err)
		}

		if info.Name == "" || info.Description == "" {
			t.Errorf("%s: empty name or description", info.Slug)
		}

		schema := c.Schema()
		if len(schema.Fields) == 0 {
			t.Errorf("%s: schema has no fields", info.Slug)
		}
		seen := map[string]bool{}
		for _, f := range schema.Fields {
			if f.Name == "" || f.Label == "" {
				t.Errorf("%s: field with empty name or label", info.Slug)
			}
			if seen[f.Name] {
				t.Errorf("%s: duplicate field %q", info.Slug, f.Name)
			}
			seen[f.Name] = true
			if f.Type == calc.TypeEnum && len(f.Enum) == 0 {
				t.Errorf("%s: enum field %q without options", info.Slug, f.Name)
			}
		}

		guide := c.Guide()
		if guide.Summary == "" {
			t.Errorf("%s: guide has no summary", info.Slug)
		}
		for _, related := range guide.Related {
			if _, err := reg.Get(related); err != nil {
				t.Errorf("%s: related slug %q not in catalog", info.Slug, related)
			}
		}
	}
}

// A submission missing every required field must come back as a
// ValidationError, never a panic or a computed result.
func TestCatalogRejectsEmptyInput(t *testing.T) {
	reg := newCatalog(t)
	for _, info := range reg.List("") {
		c, err := reg.Get(info.Slug)
		if err != nil {
			t.Fatal(err)
		}
		hasRequired := false
		for _, f := range c.Schema().Fields {
			if f.Required {
				hasRequired = true
				break
			}
		}
		if !hasRequired {
			continue
		}
		_, err = calc.Evaluate(context.Background(), c, map[string]any{})
		if err == nil {
			t.Errorf("%s: empty input should fail validation", info.Slug)
			continue
		}
		if _, ok := calc.AsValidationError(err); !ok {
			t.Errorf("%s: want *ValidationError, got %T", info.Slug, err)
		}
	}
}
