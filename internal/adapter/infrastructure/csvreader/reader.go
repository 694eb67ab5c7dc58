// Package csvreader provides the CSV row source adapter implementation.
package csvreader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"appliance-portcfg/internal/port"
	"appliance-portcfg/internal/types"
)

// ErrInputNotFound is returned when the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

const utf8BOM = "\ufeff"

// ReaderAdapter is an adapter that implements the RowSource port on top of the FileManager port.
type ReaderAdapter struct {
	fileMgr port.FileManager
}

// Ensure ReaderAdapter implements the RowSource port
var _ port.RowSource = (*ReaderAdapter)(nil)

// NewReaderAdapter creates a new CSV row source.
func NewReaderAdapter(fileMgr port.FileManager) *ReaderAdapter {
	return &ReaderAdapter{fileMgr: fileMgr}
}

// ReadRows reads the header and every data row of filename.
// Short records leave the trailing columns absent; cells beyond the header are dropped.
func (r *ReaderAdapter) ReadRows(filename string) ([]types.Row, error) {
	if !r.fileMgr.FileExists(filename) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, filename)
	}

	fh, err := r.fileMgr.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return Parse(fh)
}

// Parse reads CSV data with a header row from in.
func Parse(in io.Reader) ([]types.Row, error) {
	reader := csv.NewReader(bufio.NewReader(in))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		columns[i] = strings.TrimSpace(h)
	}

	var rows []types.Row
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line, err)
		}

		fields := make(map[string]string, len(columns))
		for i, value := range record {
			if i >= len(columns) {
				break
			}
			if columns[i] == "" {
				continue
			}
			fields[columns[i]] = value
		}
		rows = append(rows, types.Row{Line: line, Fields: fields})
	}

	return rows, nil
}
