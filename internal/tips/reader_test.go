package tips

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCSVReader(t *testing.T) {
	src := " Name ,Position,Total Tips\nDoe, Jane,server\nBob Ray,runner,12\n"
	table, err := (&CSVReader{}).Read(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Position", "Total Tips"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Doe", table.Rows[0][0])
}

func TestCSVReaderStripsLeadingBOM(t *testing.T) {
	src := "\uFEFFName,Total Tips\n\"Doe, Jane\",$45.00\n"
	table, err := (&CSVReader{}).Read(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Total Tips"}, table.Headers)
	assert.Equal(t, 0, GuessNameColumn(table.Headers))
}

func TestCSVReaderEmpty(t *testing.T) {
	_, err := (&CSVReader{}).Read(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestExcelReader(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Name", "Total Tips"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Doe, Jane", 45.5}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Bob Ray", "$12"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	table, err := (&ExcelReader{}).Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Total Tips"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Doe, Jane", table.Rows[0][0])
	assert.Equal(t, "45.5", table.Rows[0][1])
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("csv"))
	assert.NotNil(t, r.Get("XLSX"))
	assert.Nil(t, r.Get("pdf"))

	// Legacy BIFF files get their own reader; the OOXML parser cannot
	// open them.
	rd := r.Get("xls")
	require.NotNil(t, rd)
	assert.IsType(t, &XLSReader{}, rd)
	assert.IsType(t, &ExcelReader{}, r.Get("xlsx"))
}

func TestXLSReaderRejectsNonBIFF(t *testing.T) {
	_, err := (&XLSReader{}).Read(strings.NewReader("not a workbook"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "legacy tips workbook")
}

func TestReadFileUnsupportedFormat(t *testing.T) {
	_, err := ReadFile("tips.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported tips format")
}
