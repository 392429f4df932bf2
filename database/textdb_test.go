package database

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestTable(t *testing.T, hasHeader bool) *Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.csv")
	return NewTable(path, []string{"a", "b", "c"}, hasHeader)
}

func TestListAllMissingFile(t *testing.T) {
	table := newTestTable(t, true)
	rows, err := table.ListAll()
	if err != nil {
		t.Fatalf("ListAll on missing file: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(rows))
	}
}

func TestAppendOneWritesHeaderOnce(t *testing.T) {
	table := newTestTable(t, true)
	if err := table.AppendOne([]string{"1", "2", "3"}); err != nil {
		t.Fatalf("AppendOne: %v", err)
	}
	if err := table.AppendOne([]string{"4", "5", "6"}); err != nil {
		t.Fatalf("AppendOne: %v", err)
	}

	data, err := os.ReadFile(table.path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "a,b,c\n1,2,3\n4,5,6\n"
	if string(data) != want {
		t.Fatalf("file contents = %q, want %q", data, want)
	}
}

func TestAppendNeverMutatesPriorRows(t *testing.T) {
	table := newTestTable(t, false)
	appended := [][]string{
		{"r1", "x", "y"},
		{"r2", "x", "y"},
		{"r3", "x", "y"},
	}
	for i, row := range appended {
		if err := table.AppendOne(row); err != nil {
			t.Fatalf("AppendOne: %v", err)
		}
		rows, err := table.ListAll()
		if err != nil {
			t.Fatalf("ListAll: %v", err)
		}
		if !reflect.DeepEqual(rows, appended[:i+1]) {
			t.Fatalf("after append %d rows = %v, want %v", i+1, rows, appended[:i+1])
		}
	}
}

func TestAppendRejectsWrongColumnCount(t *testing.T) {
	table := newTestTable(t, false)
	if err := table.AppendOne([]string{"only", "two"}); err == nil {
		t.Fatal("expected error for wrong column count")
	}
}

func TestRewriteAllReplacesContents(t *testing.T) {
	table := newTestTable(t, true)
	if err := table.AppendOne([]string{"old", "1", "2"}); err != nil {
		t.Fatalf("AppendOne: %v", err)
	}
	if err := table.RewriteAll([][]string{{"new", "3", "4"}}); err != nil {
		t.Fatalf("RewriteAll: %v", err)
	}

	rows, err := table.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(rows) != 1 || rows[0][0] != "new" {
		t.Fatalf("rows = %v, want single row starting with new", rows)
	}

	// Header must survive the rewrite.
	data, err := os.ReadFile(table.path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "a,b,c\nnew,3,4\n" {
		t.Fatalf("file contents = %q", data)
	}
}

func TestListAllSkipsMalformedRows(t *testing.T) {
	table := newTestTable(t, false)
	if err := os.WriteFile(table.path, []byte("1,2,3\nshort\n4,5,6\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rows, err := table.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected malformed row skipped, got %v", rows)
	}
}

func TestCopyToStreamsVerbatim(t *testing.T) {
	table := newTestTable(t, false)
	raw := "u1,n1,m1\nu2,n2,m2\n"
	if err := os.WriteFile(table.path, []byte(raw), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var buf bytes.Buffer
	if err := table.CopyTo(&buf); err != nil {
		t.Fatalf("CopyTo: %v", err)
	}
	if buf.String() != raw {
		t.Fatalf("CopyTo = %q, want %q", buf.String(), raw)
	}
}

func TestCopyToMissingFile(t *testing.T) {
	table := newTestTable(t, false)
	var buf bytes.Buffer
	if err := table.CopyTo(&buf); err != nil {
		t.Fatalf("CopyTo on missing file: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
