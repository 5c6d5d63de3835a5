// Package export renders calculation results as XLSX workbooks.
package export

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/calcsuite/calcsuite/internal/calc"
)

const summarySheet = "Summary"

// Workbook builds an XLSX workbook for one computed result and writes
// it to w. The summary sheet lists inputs, values and tiers; a result
// table, when present, gets its own sheet.
func Workbook(w io.Writer, info calc.Info, input map[string]any, result *calc.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export: style: %w", err)
	}

	row := 1
	setRow := func(a, b any) {
		f.SetCellValue(summarySheet, cell("A", row), a)
		f.SetCellValue(summarySheet, cell("B", row), b)
		row++
	}
	header := func(title string) {
		f.SetCellValue(summarySheet, cell("A", row), title)
		f.SetCellStyle(summarySheet, cell("A", row), cell("A", row), bold)
		row++
	}

	setRow(info.Name, "")
	f.SetCellStyle(summarySheet, "A1", "A1", bold)
	setRow("Generated", time.Now().UTC().Format(time.RFC3339))
	setRow("Calculator", info.Slug)
	setRow("Category", string(info.Category))
	row++

	header("Inputs")
	for _, k := range sortedKeys(input) {
		setRow(k, fmt.Sprintf("%v", input[k]))
	}
	row++

	header("Results")
	for _, v := range result.Values {
		label := v.Label
		if v.Unit != "" {
			label = fmt.Sprintf("%s (%s)", v.Label, v.Unit)
		}
		setRow(label, v.Value)
	}

	if len(result.Tiers) > 0 {
		row++
		header("Assessment")
		for _, tier := range result.Tiers {
			setRow(tier.Label, tier.Advice)
		}
	}

	for i, note := range result.Notes {
		if i == 0 {
			row++
			header("Notes")
		}
		setRow(note, "")
	}

	f.SetColWidth(summarySheet, "A", "A", 36)
	f.SetColWidth(summarySheet, "B", "B", 60)

	if result.Table != nil {
		if err := writeTable(f, bold, result.Table); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

func writeTable(f *excelize.File, headerStyle int, table *calc.Table) error {
	name := sheetName(table.Title)
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("export: new sheet: %w", err)
	}

	for col, title := range table.Columns {
		ref := cell(columnLetter(col), 1)
		f.SetCellValue(name, ref, title)
		f.SetCellStyle(name, ref, ref, headerStyle)
	}
	for r, rowVals := range table.Rows {
		for col, v := range rowVals {
			f.SetCellValue(name, cell(columnLetter(col), r+2), v)
		}
	}
	if len(table.Columns) > 0 {
		f.SetColWidth(name, "A", columnLetter(len(table.Columns)-1), 18)
	}
	return nil
}

// sheetName trims a table title to excelize's 31-character sheet limit.
func sheetName(title string) string {
	if title == "" {
		return "Table"
	}
	if len(title) > 31 {
		return title[:31]
	}
	return title
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func columnLetter(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
