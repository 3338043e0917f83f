// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pipeline

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/danielhkuo/psychopredict/survey"
)

// Pipeline is a fitted ColumnTransformer followed by a RandomForest.
// A fitted Pipeline is read-only and safe for concurrent use.
type Pipeline struct {
	Schema      Schema
	Transformer ColumnTransformer
	Forest      RandomForest
	Labels      []string
}

// New returns an unfitted pipeline with the given forest parameters.
func New(cfg ForestConfig) *Pipeline {
	return &Pipeline{Forest: RandomForest{Config: cfg}}
}

// Fit learns the preprocessing and the classifier from every row of t.
// The label column must have no missing values.
func (p *Pipeline) Fit(t *survey.Table, label string) error {
	if t.Len() == 0 {
		return errors.New("pipeline: cannot fit on an empty table")
	}

	schema, err := InferSchema(t, label)
	if err != nil {
		return err
	}

	labelCells, err := t.Column(label)
	if err != nil {
		return err
	}
	raw := make([]string, len(labelCells))
	for i, c := range labelCells {
		if c.Missing {
			return &SchemaError{Column: label, Reason: fmt.Sprintf("missing label in row %d", i)}
		}
		raw[i] = c.Value
	}

	labels := slices.Clone(raw)
	slices.Sort(labels)
	labels = slices.Compact(labels)

	y := make([]int, len(raw))
	for i, v := range raw {
		y[i], _ = slices.BinarySearch(labels, v)
	}

	var ct ColumnTransformer
	if err := ct.Fit(t, schema); err != nil {
		return err
	}
	x, err := ct.Transform(t)
	if err != nil {
		return err
	}

	forest := RandomForest{Config: p.Forest.Config}
	if err := forest.Fit(x, y, len(labels)); err != nil {
		return err
	}

	p.Schema = schema
	p.Transformer = ct
	p.Forest = forest
	p.Labels = labels
	return nil
}

// Classes returns the class labels in probability order.
func (p *Pipeline) Classes() []string {
	return slices.Clone(p.Labels)
}

// PredictProba returns one probability per class, in Classes order.
func (p *Pipeline) PredictProba(row Row) ([]float64, error) {
	if len(p.Labels) == 0 {
		return nil, errors.New("pipeline: not fitted")
	}
	if err := p.Schema.validate(row); err != nil {
		return nil, err
	}
	x, err := p.Transformer.TransformRow(row)
	if err != nil {
		return nil, err
	}
	return p.Forest.PredictProba(x), nil
}

// Predict returns the most probable class label.
func (p *Pipeline) Predict(row Row) (string, error) {
	proba, err := p.PredictProba(row)
	if err != nil {
		return "", err
	}
	return p.Labels[floats.MaxIdx(proba)], nil
}

// Categories returns the categories learned for a categorical column.
func (p *Pipeline) Categories(column string) []string {
	return p.Transformer.Categories(column)
}
