// Package filestore keeps rooms and reservations in line-oriented comma-separated text files.
// Every write renders the whole file and atomically replaces the previous version.
package filestore

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

const (
	filePerm     = 0o644
	maxLineBytes = 1 << 20
)

// lineBreaks keeps every record on one physical line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// MalformedRecordError pinpoints the row and column that could not be decoded.
type MalformedRecordError struct {
	Path  string
	Line  int
	Field string
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s:%d: invalid %s %q: %v", e.Path, e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s:%d: invalid %s %q", e.Path, e.Line, e.Field, e.Value)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

type record struct {
	line   int
	fields []string
}

func (r record) field(i int) string {
	if i < len(r.fields) {
		return r.fields[i]
	}
	return ""
}

// readRecords returns exists=false when path does not exist.
// Each physical line is one record; comment lines and blank lines are skipped.
func readRecords(path string) ([]record, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var out []record
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSuffix(sc.Text(), "\r")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		out = append(out, record{line: line, fields: splitLine(text)})
	}
	if err := sc.Err(); err != nil {
		return nil, true, err
	}
	return out, true, nil
}

// splitLine reads quoted fields as written by writeRecords. A line that is not valid
// quoted CSV, such as a legacy row with a bare quote in a name, is split on commas as-is.
func splitLine(line string) []string {
	if !strings.Contains(line, `"`) {
		return strings.Split(line, ",")
	}
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if err != nil {
		return strings.Split(line, ",")
	}
	return fields
}

// writeRecords renders header and rows and swaps the file in with a rename.
func writeRecords(path, header string, rows [][]string) error {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteByte('\n')

	w := csv.NewWriter(&buf)
	for _, row := range rows {
		for i, field := range row {
			row[i] = lineBreaks.Replace(field)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return renameio.WriteFile(path, buf.Bytes(), filePerm)
}
