package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/internal/calculators/finance"
)

func TestWorkbook(t *testing.T) {
	input := map[string]any{"amount": 10000.0, "rate": 12.0, "term_months": 24.0}
	c := finance.Loan{}
	result, err := calc.Evaluate(context.Background(), c, input)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Workbook(&buf, c.Info(), input, result); err != nil {
		t.Fatalf("Workbook: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("workbook does not parse back: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("sheets = %v, want summary plus schedule", sheets)
	}
	if sheets[0] != "Summary" {
		t.Errorf("first sheet = %q, want Summary", sheets[0])
	}

	title, err := f.GetCellValue("Summary", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if title != c.Info().Name {
		t.Errorf("A1 = %q, want %q", title, c.Info().Name)
	}

	// The amortization sheet holds a header row plus one row per month.
	rows, err := f.GetRows(sheets[1])
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 25 {
		t.Errorf("schedule rows = %d, want 25", len(rows))
	}
}

func TestWorkbookNoTable(t *testing.T) {
	input := map[string]any{"height": 175.0, "weight": 70.0}
	result := &calc.Result{
		Values: []calc.Value{{Name: "bmi", Label: "Body mass index", Value: 22.9}},
		Tiers:  []calc.Tier{{Metric: "bmi", Label: "normal weight", Advice: "ok"}},
	}
	info := calc.Info{Slug: "bmi", Name: "BMI Calculator", Category: calc.CategoryHealth}

	var buf bytes.Buffer
	if err := Workbook(&buf, info, input, result); err != nil {
		t.Fatalf("Workbook: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if sheets := f.GetSheetList(); len(sheets) != 1 {
		t.Errorf("sheets = %v, want only Summary", sheets)
	}
}

func TestSheetName(t *testing.T) {
	if got := sheetName(""); got != "Table" {
		t.Errorf("sheetName(\"\") = %q", got)
	}
	long := "A very long table title that exceeds the sheet limit"
	if got := sheetName(long); len(got) != 31 {
		t.Errorf("len = %d, want 31", len(got))
	}
}
