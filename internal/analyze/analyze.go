// Package analyze reports the structure of a spreadsheet without exposing
// any of its cell values.
package analyze

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const sampleSize = 3

// Dtype names, using the dataframe vocabulary the report has always used
const (
	DtypeInt      = "int64"
	DtypeFloat    = "float64"
	DtypeBool     = "bool"
	DtypeDatetime = "datetime64[ns]"
	DtypeObject   = "object"
)

// Report is the structure of a whole workbook
type Report struct {
	SheetNames []string                `json:"sheet_names"`
	Sheets     map[string]*SheetReport `json:"sheets"`
}

// SheetReport describes one sheet. The first row is treated as the header.
type SheetReport struct {
	RowCount    int                      `json:"row_count"`
	ColumnCount int                      `json:"column_count"`
	ColumnNames []string                 `json:"column_names"`
	Columns     map[string]*ColumnReport `json:"columns"`
}

type ColumnReport struct {
	DataType      string   `json:"data_type"`
	NonNullCount  int      `json:"non_null_count"`
	NullCount     int      `json:"null_count"`
	SamplePattern []string `json:"sample_pattern"`
}

// CellKind is the type a workbook stores for a cell. It comes from the cell
// itself, never from what its text looks like, so a text cell holding
// "2024-01-15" or "42" stays a string.
type CellKind int

const (
	KindNull CellKind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
	KindString
)

// Cell is one raw cell value with its stored kind
type Cell struct {
	Value string
	Kind  CellKind
}

// Workbook opens the file at path and analyzes every sheet in order
func Workbook(path string) (*Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	report := &Report{
		SheetNames: f.GetSheetList(),
		Sheets:     make(map[string]*SheetReport),
	}

	r := &reader{file: f, dateStyles: make(map[int]bool)}
	for _, name := range report.SheetNames {
		rows, err := r.rows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		report.Sheets[name] = Sheet(rows)
	}

	return report, nil
}

// Sheet analyzes the rows of a single sheet. Rows may be ragged; missing
// trailing cells count as nulls.
func Sheet(rows [][]Cell) *SheetReport {
	sheet := &SheetReport{
		ColumnNames: []string{},
		Columns:     make(map[string]*ColumnReport),
	}
	if len(rows) == 0 {
		return sheet
	}

	header := rows[0]
	data := rows[1:]
	sheet.RowCount = len(data)
	sheet.ColumnCount = len(header)

	for i, raw := range header {
		name := columnName(raw.Value, i, sheet.Columns)
		sheet.ColumnNames = append(sheet.ColumnNames, name)

		cells := make([]Cell, len(data))
		for r, row := range data {
			if i < len(row) {
				cells[r] = row[i]
			}
		}
		sheet.Columns[name] = Column(cells)
	}

	return sheet
}

// Column infers a dtype and redacted samples for one column's cells
func Column(cells []Cell) *ColumnReport {
	col := &ColumnReport{SamplePattern: []string{}}
	seen := make(map[CellKind]bool)

	for _, c := range cells {
		if c.Kind == KindNull || strings.TrimSpace(c.Value) == "" {
			col.NullCount++
			continue
		}
		col.NonNullCount++
		seen[c.Kind] = true
		if len(col.SamplePattern) < sampleSize {
			col.SamplePattern = append(col.SamplePattern, pattern(c.Kind, c.Value))
		}
	}

	col.DataType = dtype(seen, col.NullCount > 0)
	return col
}

func pattern(kind CellKind, v string) string {
	switch kind {
	case KindInt, KindFloat:
		return "<number>"
	case KindDate:
		return "<date>"
	case KindBool:
		return "<bool>"
	default:
		return fmt.Sprintf("<string, len=%d>", utf8.RuneCountInString(v))
	}
}

// dtype mirrors how a dataframe would type the column: integers with nulls
// widen to float64, booleans with nulls become object, and a column with no
// values at all is float64.
func dtype(seen map[CellKind]bool, hasNulls bool) string {
	switch len(seen) {
	case 0:
		return DtypeFloat
	case 1:
		switch {
		case seen[KindInt]:
			if hasNulls {
				return DtypeFloat
			}
			return DtypeInt
		case seen[KindFloat]:
			return DtypeFloat
		case seen[KindBool]:
			if hasNulls {
				return DtypeObject
			}
			return DtypeBool
		case seen[KindDate]:
			return DtypeDatetime
		}
	case 2:
		if seen[KindInt] && seen[KindFloat] {
			return DtypeFloat
		}
	}
	return DtypeObject
}

// columnName falls back to positional names for blank headers and suffixes
// repeated headers so every column keeps its own entry.
func columnName(raw string, index int, existing map[string]*ColumnReport) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = fmt.Sprintf("Unnamed: %d", index)
	}
	base := name
	for n := 1; ; n++ {
		if _, taken := existing[name]; !taken {
			return name
		}
		name = fmt.Sprintf("%s.%d", base, n)
	}
}
