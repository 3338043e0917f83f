// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	ErrInputNotFound = errors.New("input file not found")
	ErrMissingColumn = errors.New("missing required column")
)

// ReadCSV parses a comma-delimited file with a header row.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("survey: empty input, header row required")
	}
	if err != nil {
		return nil, fmt.Errorf("survey: read header: %w", err)
	}

	t, err := NewTable(header)
	if err != nil {
		return nil, err
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("survey: read row %d: %w", t.Len()+1, err)
		}
		if err := t.AppendRow(record); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// LoadCSV reads a table from disk. A path that does not exist yields an
// error wrapping ErrInputNotFound.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("survey: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// WriteCSV writes the table with a header row. Missing cells are written
// as empty fields.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.columns); err != nil {
		return fmt.Errorf("survey: write header: %w", err)
	}

	record := make([]string, len(t.columns))
	for _, row := range t.rows {
		for j, c := range row {
			record[j] = c.Value
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("survey: write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the table to path, creating parent directories.
func SaveCSV(path string, t *Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("survey: create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("survey: create %s: %w", path, err)
	}

	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
