package tips

import (
	"bytes"
	"fmt"
	"io"

	"github.com/shakinm/xlsReader/xls"
)

// XLSReader parses the first sheet of a legacy BIFF (.xls) workbook as
// a tips ledger. Modern .xlsx files are a different container and go
// through ExcelReader.
type XLSReader struct{}

// Format returns the reader name.
func (r *XLSReader) Format() string { return "xls" }

// Read opens the workbook and reads the first sheet, treating its
// first row as headers. The BIFF parser needs random access, so the
// stream is buffered in full first; ledgers are at most a few thousand
// rows.
func (r *XLSReader) Read(src io.Reader) (*Table, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading tips workbook: %w", err)
	}

	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening legacy tips workbook: %w", err)
	}

	sh, err := wb.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("reading first sheet: %w", err)
	}

	var rows [][]string
	for i := 0; i < sh.GetNumberRows(); i++ {
		row, err := sh.GetRow(i)
		if err != nil {
			continue
		}
		var cells []string
		for _, c := range row.GetCols() {
			cells = append(cells, c.GetString())
		}
		rows = append(rows, cells)
	}
	return tableFromRows(rows)
}
