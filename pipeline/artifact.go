// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pipeline

import (
	"bufio"
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var ErrBadArtifact = errors.New("not a pipeline artifact")

var magic = []byte("PSYPRED\x00")

// Save writes a fitted pipeline to w.
func Save(w io.Writer, p *Pipeline) error {
	if len(p.Labels) == 0 {
		return errors.New("pipeline: refusing to save an unfitted pipeline")
	}
	if _, err := w.Write(magic); err != nil {
		return fmt.Errorf("pipeline: write header: %w", err)
	}
	if err := gob.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("pipeline: encode: %w", err)
	}
	return nil
}

// Load reads a pipeline written by Save.
func Load(r io.Reader) (*Pipeline, error) {
	br := bufio.NewReader(r)
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(br, header); err != nil || !bytes.Equal(header, magic) {
		return nil, ErrBadArtifact
	}

	var p Pipeline
	if err := gob.NewDecoder(br).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArtifact, err)
	}
	if len(p.Labels) == 0 || len(p.Forest.Trees) == 0 {
		return nil, fmt.Errorf("%w: empty model", ErrBadArtifact)
	}
	return &p, nil
}

// SaveFile writes the pipeline to path. The file is written next to its
// destination and renamed into place, so readers never see a partial file.
func SaveFile(path string, p *Pipeline) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("pipeline: create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("pipeline: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	bw := bufio.NewWriter(tmp)
	if err := Save(bw, p); err != nil {
		tmp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("pipeline: flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("pipeline: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("pipeline: rename: %w", err)
	}
	return nil
}

// LoadFile reads a pipeline from path.
func LoadFile(path string) (*Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load %s: %w", path, err)
	}
	return p, nil
}
