// Package tips reads free-form tip ledgers and matches their names to
// timesheet employees.
package tips

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Table is a tips ledger: an ordered header row plus raw data rows.
// Ledger columns are not statically known — the caller picks the name
// and amount columns by index.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Reader parses one ledger file format into a Table.
type Reader interface {
	Read(r io.Reader) (*Table, error)
	Format() string
}

// Registry holds named readers.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rd Reader) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader format: " + key)
	}
	r.readers[key] = rd
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVReader{})
	r.Register(&ExcelReader{})
	r.Register(&XLSReader{})
	return r
}

// ReadFile opens path with the reader for its extension.
func ReadFile(path string) (*Table, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	rd := DefaultRegistry().Get(format)
	if rd == nil {
		return nil, fmt.Errorf("unsupported tips format %q: use CSV or Excel", format)
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tips file: %w", err)
	}
	defer fh.Close()
	return rd.Read(fh)
}

// CSVReader parses a flat CSV tips ledger.
type CSVReader struct{}

// Format returns the reader name.
func (r *CSVReader) Format() string { return "csv" }

// Read parses the ledger, treating the first row as headers.
func (r *CSVReader) Read(src io.Reader) (*Table, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading tips CSV: %w", err)
	}
	return tableFromRows(records)
}

// tableFromRows splits raw rows into trimmed headers and data rows. A
// UTF-8 BOM in front of the first header is stripped so column guessing
// and selection see the real name.
func tableFromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, errors.New("tips file appears to be empty")
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		headers[i] = strings.TrimSpace(h)
	}
	return &Table{Headers: headers, Rows: rows[1:]}, nil
}
