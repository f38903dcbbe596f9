package tips

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelReader parses the first sheet of an Excel workbook as a tips
// ledger.
type ExcelReader struct{}

// Format returns the reader name.
func (r *ExcelReader) Format() string { return "xlsx" }

// Read opens the workbook and reads the first sheet, treating its
// first row as headers.
func (r *ExcelReader) Read(src io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("opening tips workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("tips workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return tableFromRows(rows)
}
