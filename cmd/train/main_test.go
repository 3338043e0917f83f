package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/psychopredict/pipeline"
	"github.com/danielhkuo/psychopredict/testutil"
)

func TestTrainCommand(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "model.gob")
	processed := filepath.Join(dir, "processed.csv")

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--raw", testutil.WriteSyntheticCSV(t, 120),
		"--processed", processed,
		"--model", model,
		"--estimators", "5",
		"--max-depth", "6",
		"--log-level", "error",
	})
	require.NoError(t, cmd.Execute())

	p, err := pipeline.LoadFile(model)
	require.NoError(t, err)
	assert.Len(t, p.Forest.Trees, 5)
	assert.FileExists(t, processed)
}

func TestTrainCommand_MissingRaw(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "model.gob")

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--raw", filepath.Join(dir, "missing.csv"),
		"--model", model,
		"--log-level", "error",
	})
	assert.Error(t, cmd.Execute())

	_, err := os.Stat(model)
	assert.True(t, os.IsNotExist(err))
}

func TestTrainCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
