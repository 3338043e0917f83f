// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pipeline

import (
	"slices"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/danielhkuo/psychopredict/survey"
)

// StandardScaler centers numeric columns to zero mean and unit variance
// using the population standard deviation of the fit data.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

// Fit computes per-column statistics. cols[j] holds every value of column j.
func (s *StandardScaler) Fit(cols [][]float64) {
	s.Mean = make([]float64, len(cols))
	s.Scale = make([]float64, len(cols))
	for j, col := range cols {
		mean, std := stat.PopMeanStdDev(col, nil)
		if std == 0 {
			std = 1
		}
		s.Mean[j] = mean
		s.Scale[j] = std
	}
}

func (s *StandardScaler) transform(j int, v float64) float64 {
	return (v - s.Mean[j]) / s.Scale[j]
}

// OneHotEncoder maps each categorical column to one indicator per
// category seen during Fit. Unknown categories encode as all zeros.
type OneHotEncoder struct {
	Categories [][]string
}

// Fit records the sorted distinct values of each column.
func (e *OneHotEncoder) Fit(cols [][]string) {
	e.Categories = make([][]string, len(cols))
	for j, col := range cols {
		cats := slices.Clone(col)
		slices.Sort(cats)
		e.Categories[j] = slices.Compact(cats)
	}
}

// Width is the total number of indicator columns.
func (e *OneHotEncoder) Width() int {
	w := 0
	for _, cats := range e.Categories {
		w += len(cats)
	}
	return w
}

// encode sets the indicator for v in dst, which must be the slice for
// column j. It reports whether v was a known category.
func (e *OneHotEncoder) encode(j int, v string, dst []float64) bool {
	cats := e.Categories[j]
	k := sort.SearchStrings(cats, v)
	if k < len(cats) && cats[k] == v {
		dst[k] = 1
		return true
	}
	return false
}

// ColumnTransformer scales numeric columns and one-hot encodes
// categorical columns. Output layout is numeric features first, then the
// indicator blocks in schema order.
type ColumnTransformer struct {
	Numeric     []string
	Categorical []string
	Scaler      StandardScaler
	Encoder     OneHotEncoder
}

// Fit learns scaler statistics and encoder categories from t.
func (c *ColumnTransformer) Fit(t *survey.Table, s Schema) error {
	c.Numeric = s.Numeric()
	c.Categorical = s.Categorical()

	num := make([][]float64, len(c.Numeric))
	for j, name := range c.Numeric {
		cells, err := t.Column(name)
		if err != nil {
			return &SchemaError{Column: name, Reason: "missing from table"}
		}
		num[j] = make([]float64, len(cells))
		for i, cell := range cells {
			v, err := parseNumeric(name, cell)
			if err != nil {
				return err
			}
			num[j][i] = v
		}
	}

	cat := make([][]string, len(c.Categorical))
	for j, name := range c.Categorical {
		cells, err := t.Column(name)
		if err != nil {
			return &SchemaError{Column: name, Reason: "missing from table"}
		}
		cat[j] = make([]string, len(cells))
		for i, cell := range cells {
			if cell.Missing {
				return &SchemaError{Column: name, Reason: "missing value in fit data"}
			}
			cat[j][i] = cell.Value
		}
	}

	c.Scaler.Fit(num)
	c.Encoder.Fit(cat)
	return nil
}

// Width is the number of output features.
func (c *ColumnTransformer) Width() int {
	return len(c.Numeric) + c.Encoder.Width()
}

// Transform encodes every row of t into a dense matrix.
func (c *ColumnTransformer) Transform(t *survey.Table) (*mat.Dense, error) {
	x := mat.NewDense(t.Len(), c.Width(), nil)
	for i := 0; i < t.Len(); i++ {
		if err := c.transformInto(Row(t.Record(i)), x.RawRowView(i)); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// TransformRow encodes a single row.
func (c *ColumnTransformer) TransformRow(row Row) ([]float64, error) {
	out := make([]float64, c.Width())
	if err := c.transformInto(row, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ColumnTransformer) transformInto(row Row, dst []float64) error {
	for j, name := range c.Numeric {
		raw, ok := row[name]
		if !ok {
			return &SchemaError{Column: name, Reason: "missing from row"}
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return &SchemaError{Column: name, Reason: "non-numeric value " + strconv.Quote(raw)}
		}
		dst[j] = c.Scaler.transform(j, v)
	}

	offset := len(c.Numeric)
	for j, name := range c.Categorical {
		raw, ok := row[name]
		if !ok {
			return &SchemaError{Column: name, Reason: "missing from row"}
		}
		width := len(c.Encoder.Categories[j])
		c.Encoder.encode(j, raw, dst[offset:offset+width])
		offset += width
	}
	return nil
}

// FeatureNames returns output feature names in the num__/cat__ style.
func (c *ColumnTransformer) FeatureNames() []string {
	names := make([]string, 0, c.Width())
	for _, name := range c.Numeric {
		names = append(names, "num__"+name)
	}
	for j, name := range c.Categorical {
		for _, cat := range c.Encoder.Categories[j] {
			names = append(names, "cat__"+name+"_"+cat)
		}
	}
	return names
}

// Categories returns the known categories of a categorical column.
func (c *ColumnTransformer) Categories(column string) []string {
	j := slices.Index(c.Categorical, column)
	if j < 0 {
		return nil
	}
	return slices.Clone(c.Encoder.Categories[j])
}

func parseNumeric(column string, cell survey.Cell) (float64, error) {
	if cell.Missing {
		return 0, &SchemaError{Column: column, Reason: "missing value in fit data"}
	}
	v, err := strconv.ParseFloat(cell.Value, 64)
	if err != nil {
		return 0, &SchemaError{Column: column, Reason: "non-numeric value " + strconv.Quote(cell.Value)}
	}
	return v, nil
}
