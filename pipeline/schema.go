// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pipeline

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/danielhkuo/psychopredict/survey"
)

var ErrSchemaMismatch = errors.New("schema mismatch")

// SchemaError reports a row or table that does not match the fitted schema.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("pipeline: column %q: %s", e.Column, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaMismatch
}

// Kind is the type of a feature column.
type Kind int

const (
	Categorical Kind = iota
	Numeric
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "categorical"
}

type Column struct {
	Name string
	Kind Kind
}

// Schema describes the feature columns a pipeline was fitted on.
type Schema struct {
	Label   string
	Columns []Column
}

// Numeric returns the numeric column names in table order.
func (s Schema) Numeric() []string {
	return s.names(Numeric)
}

// Categorical returns the categorical column names in table order.
func (s Schema) Categorical() []string {
	return s.names(Categorical)
}

func (s Schema) names(k Kind) []string {
	var names []string
	for _, c := range s.Columns {
		if c.Kind == k {
			names = append(names, c.Name)
		}
	}
	return names
}

// Row is one observation keyed by column name.
type Row map[string]string

// InferSchema classifies every non-label column: a column is numeric when
// it has at least one value and every present value parses as a float.
func InferSchema(t *survey.Table, label string) (Schema, error) {
	if !t.HasColumn(label) {
		return Schema{}, &SchemaError{Column: label, Reason: "label column not found"}
	}

	s := Schema{Label: label}
	for _, name := range t.Columns() {
		if name == label {
			continue
		}
		cells, err := t.Column(name)
		if err != nil {
			return Schema{}, err
		}
		s.Columns = append(s.Columns, Column{Name: name, Kind: inferKind(cells)})
	}
	if len(s.Columns) == 0 {
		return Schema{}, &SchemaError{Column: label, Reason: "no feature columns"}
	}
	return s, nil
}

func inferKind(cells []survey.Cell) Kind {
	seen := false
	for _, c := range cells {
		if c.Missing {
			continue
		}
		if _, err := strconv.ParseFloat(c.Value, 64); err != nil {
			return Categorical
		}
		seen = true
	}
	if !seen {
		return Categorical
	}
	return Numeric
}

// validate checks that row has exactly the schema's feature columns. The
// label column is allowed and ignored.
func (s Schema) validate(row Row) error {
	for _, c := range s.Columns {
		if _, ok := row[c.Name]; !ok {
			return &SchemaError{Column: c.Name, Reason: "missing from row"}
		}
	}
	if extra := len(row) - len(s.Columns); extra > 0 {
		known := make(map[string]bool, len(s.Columns)+1)
		known[s.Label] = true
		for _, c := range s.Columns {
			known[c.Name] = true
		}
		for name := range row {
			if !known[name] {
				return &SchemaError{Column: name, Reason: "not in fitted schema"}
			}
		}
	}
	return nil
}
