// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pipeline fits and applies the treatment-seeking classifier.

A Pipeline is a ColumnTransformer (StandardScaler on numeric columns,
OneHotEncoder on categorical columns) followed by a RandomForest of CART
trees:

	p := pipeline.New(pipeline.DefaultForestConfig())
	if err := p.Fit(cleaned, "treatment"); err != nil {
		return err
	}
	label, err := p.Predict(pipeline.Row{"Age": "29", "Gender": "Male", ...})

# Rows

Rows are keyed by the column names of the fitted table. A row that lacks a
column, carries an unknown column, or holds a non-numeric value in a
numeric column yields a *SchemaError (errors.Is ErrSchemaMismatch).
Categorical values never seen during Fit encode as all zeros.

# Artifacts

SaveFile and LoadFile persist a fitted pipeline as a gob stream behind a
short magic header. The format is tied to this package's types; retrain
after changing them.
*/
package pipeline
