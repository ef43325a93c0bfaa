package analyze

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func cells(kind CellKind, values ...string) []Cell {
	out := make([]Cell, len(values))
	for i, v := range values {
		out[i] = Cell{Value: v, Kind: kind}
		if v == "" {
			out[i].Kind = KindNull
		}
	}
	return out
}

func row(values ...string) []Cell {
	return cells(KindString, values...)
}

func TestColumn_Dtypes(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		dtype string
	}{
		{"integers", cells(KindInt, "1", "2", "30"), DtypeInt},
		{"integers with nulls", cells(KindInt, "1", "", "3"), DtypeFloat},
		{"floats", append(cells(KindFloat, "1.5", "3.25"), cells(KindInt, "2")...), DtypeFloat},
		{"booleans", cells(KindBool, "1", "0"), DtypeBool},
		{"booleans with nulls", cells(KindBool, "1", ""), DtypeObject},
		{"dates", cells(KindDate, "45306", "45291"), DtypeDatetime},
		{"dates with nulls", cells(KindDate, "45306", ""), DtypeDatetime},
		{"strings", cells(KindString, "Pine", "Broadway"), DtypeObject},
		{"text that looks typed", cells(KindString, "2024-01-15", "42", "TRUE"), DtypeObject},
		{"mixed", append(cells(KindInt, "12"), cells(KindString, "Pine")...), DtypeObject},
		{"all null", cells(KindString, "", " ", ""), DtypeFloat},
		{"empty", nil, DtypeFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dtype, Column(tt.cells).DataType)
		})
	}
}

func TestColumn_CountsAndSamples(t *testing.T) {
	col := Column([]Cell{
		{},
		{Value: "Jane Doe", Kind: KindString},
		{Value: "42", Kind: KindInt},
		{},
		{Value: "45352", Kind: KindDate},
		{Value: "1", Kind: KindBool},
		{Value: "x", Kind: KindString},
	})

	assert.Equal(t, 5, col.NonNullCount)
	assert.Equal(t, 2, col.NullCount)
	assert.Equal(t, []string{"<string, len=8>", "<number>", "<date>"}, col.SamplePattern)
}

func TestColumn_SampleCountsRunes(t *testing.T) {
	col := Column(row("Zoë"))
	assert.Equal(t, []string{"<string, len=3>"}, col.SamplePattern)
}

func TestSheet_RaggedRows(t *testing.T) {
	rows := [][]Cell{
		row("Name", "Rent", "", "Name"),
		{{Value: "Ann", Kind: KindString}, {Value: "650", Kind: KindInt}},
		{{Value: "Bob", Kind: KindString}, {Value: "700", Kind: KindInt}, {Value: "x", Kind: KindString}, {Value: "dup", Kind: KindString}},
		{},
	}

	sheet := Sheet(rows)
	assert.Equal(t, 3, sheet.RowCount)
	assert.Equal(t, 4, sheet.ColumnCount)
	assert.Equal(t, []string{"Name", "Rent", "Unnamed: 2", "Name.1"}, sheet.ColumnNames)

	assert.Equal(t, 2, sheet.Columns["Name"].NonNullCount)
	assert.Equal(t, 1, sheet.Columns["Name"].NullCount)
	assert.Equal(t, DtypeFloat, sheet.Columns["Rent"].DataType)
	assert.Equal(t, 2, sheet.Columns["Unnamed: 2"].NullCount)
	assert.Equal(t, 1, sheet.Columns["Name.1"].NonNullCount)
}

func TestDateFormats(t *testing.T) {
	assert.True(t, builtInDateFormat(14))
	assert.True(t, builtInDateFormat(22))
	assert.False(t, builtInDateFormat(0))
	assert.False(t, builtInDateFormat(4))

	assert.True(t, dateFormatCode("yyyy-mm-dd"))
	assert.True(t, dateFormatCode("[$-409]mmm d, yyyy;@"))
	assert.False(t, dateFormatCode("#,##0.00"))
	assert.False(t, dateFormatCode("[Red]0.00"))
	assert.False(t, dateFormatCode(`0 "days"`))
	assert.False(t, dateFormatCode("General"))
}

func TestSheet_Empty(t *testing.T) {
	sheet := Sheet(nil)
	assert.Zero(t, sheet.RowCount)
	assert.Zero(t, sheet.ColumnCount)
	assert.Empty(t, sheet.Columns)
}

func TestWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "participants.xlsx")

	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Client Name", "Rent Due", "Entry Date", "Active", "Entry Text", "Doc", "Score"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Alice Example", 650, jan, true, "2024-01-15", "42", 1.5}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"Bob Example", 700, feb, false, "2024-02-01", "17", 2}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]any{"Carol Example", 750, nil, true, "TRUE", "9", 3.25}))

	_, err := f.NewSheet("Houses")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Houses", "A1", &[]any{"Address", "Beds"}))
	require.NoError(t, f.SetSheetRow("Houses", "A2", &[]any{"1234 Pine Street", 12}))

	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	report, err := Workbook(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sheet1", "Houses"}, report.SheetNames)

	clients := report.Sheets["Sheet1"]
	require.NotNil(t, clients)
	assert.Equal(t, 3, clients.RowCount)
	assert.Equal(t, 7, clients.ColumnCount)
	assert.Equal(t, []string{"Client Name", "Rent Due", "Entry Date", "Active", "Entry Text", "Doc", "Score"}, clients.ColumnNames)

	assert.Equal(t, DtypeObject, clients.Columns["Client Name"].DataType)
	assert.Equal(t, DtypeInt, clients.Columns["Rent Due"].DataType)
	assert.Equal(t, DtypeDatetime, clients.Columns["Entry Date"].DataType)
	assert.Equal(t, 1, clients.Columns["Entry Date"].NullCount)
	assert.Equal(t, []string{"<date>", "<date>"}, clients.Columns["Entry Date"].SamplePattern)
	assert.Equal(t, DtypeBool, clients.Columns["Active"].DataType)
	assert.Equal(t, DtypeFloat, clients.Columns["Score"].DataType)

	// text cells keep their type however they read
	assert.Equal(t, DtypeObject, clients.Columns["Entry Text"].DataType)
	assert.Equal(t, []string{"<string, len=10>", "<string, len=10>", "<string, len=4>"}, clients.Columns["Entry Text"].SamplePattern)
	assert.Equal(t, DtypeObject, clients.Columns["Doc"].DataType)

	houses := report.Sheets["Houses"]
	require.NotNil(t, houses)
	assert.Equal(t, 1, houses.RowCount)
	assert.Equal(t, []string{"<number>"}, houses.Columns["Beds"].SamplePattern)

	raw, err := json.Marshal(report)
	require.NoError(t, err)
	for _, secret := range []string{"Alice", "Bob Example", "1234 Pine", "650"} {
		assert.NotContains(t, string(raw), secret)
	}
}

func TestWorkbook_MissingFile(t *testing.T) {
	_, err := Workbook(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorContains(t, err, "failed to open workbook")
}
