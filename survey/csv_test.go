// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMissing(t *testing.T) {
	for _, v := range []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "None", "<NA>"} {
		assert.True(t, IsMissing(v), "%q", v)
	}
	for _, v := range []string{"No", "0", " ", "na ", "Not sure", "Don't know"} {
		assert.False(t, IsMissing(v), "%q", v)
	}
}

func TestReadCSV_TracksMissingCells(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b\n1,NA\n,x\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, tbl.Columns())
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 2, tbl.MissingCount())

	_, ok := tbl.Value(0, "b")
	assert.False(t, ok)
	v, ok := tbl.Value(1, "b")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestReadCSV_RejectsRaggedRows(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1,2,3\n"))
	assert.Error(t, err)
}

func TestReadCSV_EmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadCSV_DuplicateColumns(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,a\n1,2\n"))
	assert.Error(t, err)
}

func TestLoadCSV_NotFound(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestWriteCSV_WritesMissingAsEmpty(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b\n1,NA\n2,\"x, y\"\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&buf))
	assert.Equal(t, "a,b\n1,\n2,\"x, y\"\n", buf.String())
}

func TestSaveCSV_CreatesDirectories(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a\n1\n"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	require.NoError(t, SaveCSV(path, tbl))

	back, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 1, back.Len())
}

func TestDropColumns_IgnoresUnknown(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b,c\n1,2,3\n"))
	require.NoError(t, err)

	tbl.DropColumns("b", "zzz")
	assert.Equal(t, []string{"a", "c"}, tbl.Columns())
	assert.Equal(t, map[string]string{"a": "1", "c": "3"}, tbl.Record(0))
}
