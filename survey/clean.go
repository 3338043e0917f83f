// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"fmt"
	"strings"
)

// Column names referenced by the cleaning procedure.
const (
	ColumnTimestamp     = "Timestamp"
	ColumnCountry       = "Country"
	ColumnState         = "state"
	ColumnComments      = "comments"
	ColumnAge           = "Age"
	ColumnGender        = "Gender"
	ColumnSelfEmployed  = "self_employed"
	ColumnWorkInterfere = "work_interfere"
	ColumnTreatment     = "treatment"
)

// Canonical gender values.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// DroppedColumns are identifying or free-text columns removed before fitting.
var DroppedColumns = []string{ColumnTimestamp, ColumnCountry, ColumnState, ColumnComments}

// FillColumns are filled with their mode before incomplete rows are dropped.
var FillColumns = []string{ColumnSelfEmployed, ColumnWorkInterfere}

var maleSynonyms = map[string]bool{
	"m": true, "male": true, "male-ish": true, "maile": true, "mal": true,
	"male (cis)": true, "make": true, "cis male": true, "man": true,
	"msle": true, "mail": true,
}

var femaleSynonyms = map[string]bool{
	"f": true, "female": true, "woman": true, "cis female": true,
	"femake": true, "female (cis)": true, "femail": true,
	"cis-female/femme": true, "female (trans)": true,
}

// GenderNormalizer maps a raw gender answer to GenderMale, GenderFemale or
// GenderOther.
type GenderNormalizer func(raw string) string

// DefaultGenderNormalizer lowercases the answer and looks it up in two
// fixed synonym sets. Unlisted spellings, including ones with stray
// whitespace, become GenderOther.
func DefaultGenderNormalizer(raw string) string {
	g := strings.ToLower(raw)
	switch {
	case maleSynonyms[g]:
		return GenderMale
	case femaleSynonyms[g]:
		return GenderFemale
	default:
		return GenderOther
	}
}

// CleanOptions configures Clean. The zero value uses the defaults.
type CleanOptions struct {
	Gender      GenderNormalizer
	FillColumns []string
	Label       string
}

func (o CleanOptions) withDefaults() CleanOptions {
	if o.Gender == nil {
		o.Gender = DefaultGenderNormalizer
	}
	if o.FillColumns == nil {
		o.FillColumns = FillColumns
	}
	if o.Label == "" {
		o.Label = ColumnTreatment
	}
	return o
}

// CleanReport counts rows through each cleaning stage.
type CleanReport struct {
	InputRows          int
	DroppedColumns     []string
	OtherGenderRows    int
	Filled             map[string]int
	FillValues         map[string]string
	DroppedMissingRows int
	OutputRows         int
}

// Clean returns a cleaned copy of raw:
//
//  1. drop DroppedColumns (absent ones are ignored)
//  2. canonicalize Gender and remove rows that map to GenderOther
//  3. fill missing values in the fill columns with each column's mode
//  4. drop every row that still has a missing value
//
// The input table is not modified.
func Clean(raw *Table, opts CleanOptions) (*Table, CleanReport, error) {
	opts = opts.withDefaults()
	report := CleanReport{
		InputRows:  raw.Len(),
		Filled:     make(map[string]int, len(opts.FillColumns)),
		FillValues: make(map[string]string, len(opts.FillColumns)),
	}

	required := append([]string{ColumnGender, opts.Label}, opts.FillColumns...)
	for _, name := range required {
		if !raw.HasColumn(name) {
			return nil, report, fmt.Errorf("survey: clean: %w: %q", ErrMissingColumn, name)
		}
	}

	t := raw.Clone()

	for _, name := range DroppedColumns {
		if t.HasColumn(name) {
			report.DroppedColumns = append(report.DroppedColumns, name)
		}
	}
	t.DropColumns(DroppedColumns...)

	gj := t.index[ColumnGender]
	for i, row := range t.rows {
		canonical := GenderOther
		if c := row[gj]; !c.Missing {
			canonical = opts.Gender(c.Value)
		}
		t.set(i, ColumnGender, Cell{Value: canonical})
	}
	report.OtherGenderRows = t.filter(func(row []Cell) bool {
		g := row[gj].Value
		return g == GenderMale || g == GenderFemale
	})

	for _, name := range opts.FillColumns {
		cells, _ := t.Column(name)
		var present []string
		for _, c := range cells {
			if !c.Missing {
				present = append(present, c.Value)
			}
		}
		if len(present) == len(cells) {
			continue
		}
		mode, ok := Mode(present)
		if !ok {
			return nil, report, fmt.Errorf("survey: clean: column %q has no values to fill from", name)
		}
		report.FillValues[name] = mode
		for i, c := range cells {
			if c.Missing {
				t.set(i, name, Cell{Value: mode})
				report.Filled[name]++
			}
		}
	}

	report.DroppedMissingRows = t.filter(func(row []Cell) bool {
		for _, c := range row {
			if c.Missing {
				return false
			}
		}
		return true
	})
	report.OutputRows = t.Len()

	return t, report, nil
}

// Mode returns the most frequent value. Ties go to the value seen first.
// ok is false for an empty input.
func Mode(values []string) (mode string, ok bool) {
	counts := make(map[string]int, len(values))
	best := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > best {
			best = counts[v]
		}
	}
	for _, v := range values {
		if counts[v] == best {
			return v, true
		}
	}
	return "", false
}
