package database

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Table is one delimited-text table backed by a single CSV file. Column
// order is fixed per table. All writes go through the table mutex so that
// concurrent requests never interleave rows in the underlying file.
type Table struct {
	path      string
	columns   []string
	hasHeader bool
	mu        sync.Mutex
}

// NewTable describes a table without touching the filesystem. The backing
// file is created lazily on the first append or rewrite.
func NewTable(path string, columns []string, hasHeader bool) *Table {
	return &Table{path: path, columns: columns, hasHeader: hasHeader}
}

// Columns returns the fixed column order of the table.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// ListAll reads every data row in file order. A missing file is an empty
// table, not an error. Rows with the wrong field count are skipped.
func (t *Table) ListAll() ([][]string, error) {
	file, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to open table %s", t.path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows [][]string
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read table %s", t.path)
		}
		if first && t.hasHeader {
			first = false
			continue
		}
		first = false
		if len(row) != len(t.columns) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendOne adds a single row to the end of the table. The file and, for
// header tables, the header line are created on first use. Prior rows are
// never touched.
func (t *Table) AppendOne(row []string) error {
	if len(row) != len(t.columns) {
		return errors.Errorf("table %s expects %d columns, got %d", t.path, len(t.columns), len(row))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	writeHeader := false
	if t.hasHeader {
		if _, err := os.Stat(t.path); os.IsNotExist(err) {
			writeHeader = true
		}
	}

	file, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed to open table %s for append", t.path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if writeHeader {
		if err := writer.Write(t.columns); err != nil {
			return errors.Wrapf(err, "failed to write header for table %s", t.path)
		}
	}
	if err := writer.Write(row); err != nil {
		return errors.Wrapf(err, "failed to append row to table %s", t.path)
	}
	writer.Flush()
	return errors.Wrapf(writer.Error(), "failed to flush table %s", t.path)
}

// RewriteAll replaces the entire table contents with the given rows. The new
// contents are written to a temp file and renamed into place so readers never
// observe a truncated table.
func (t *Table) RewriteAll(rows [][]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	dir := filepath.Dir(t.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(t.path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file for table %s", t.path)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	if t.hasHeader {
		if err := writer.Write(t.columns); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return errors.Wrapf(err, "failed to write header for table %s", t.path)
		}
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return errors.Wrapf(err, "failed to rewrite table %s", t.path)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to flush table %s", t.path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to close temp file for table %s", t.path)
	}
	if err := os.Rename(tmpName, t.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to replace table %s", t.path)
	}
	return nil
}

// CopyTo streams the raw file contents, byte for byte, to w. Used by the
// export endpoints, which must reproduce the stored columns exactly. A
// missing file streams nothing.
func (t *Table) CopyTo(w io.Writer) error {
	file, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to open table %s for export", t.path)
	}
	defer file.Close()

	_, err = io.Copy(w, file)
	return errors.Wrapf(err, "failed to stream table %s", t.path)
}
