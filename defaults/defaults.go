// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package defaults holds the values substituted for survey fields a form
// submission leaves out.
package defaults

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/danielhkuo/psychopredict/models"
)

// FormDefaults maps a field name to its fallback answer.
type FormDefaults map[string]string

// Builtin returns the stock defaults. Age has no default and must always
// be submitted.
func Builtin() FormDefaults {
	return FormDefaults{
		models.FieldGender:                  "Male",
		models.FieldSelfEmployed:            "No",
		models.FieldFamilyHistory:           "No",
		models.FieldWorkInterfere:           "Sometimes",
		models.FieldNoEmployees:             "6-25",
		models.FieldRemoteWork:              "No",
		models.FieldTechCompany:             "Yes",
		models.FieldBenefits:                "Yes",
		models.FieldCareOptions:             "Not sure",
		models.FieldWellnessProgram:         "No",
		models.FieldSeekHelp:                "No",
		models.FieldAnonymity:               "Don't know",
		models.FieldLeave:                   "Somewhat easy",
		models.FieldMentalHealthConsequence: "No",
		models.FieldPhysHealthConsequence:   "No",
		models.FieldCoworkers:               "Some of them",
		models.FieldSupervisor:              "Yes",
		models.FieldMentalHealthInterview:   "No",
		models.FieldPhysHealthInterview:     "Maybe",
		models.FieldMentalVsPhysical:        "Yes",
		models.FieldObsConsequence:          "No",
	}
}

// Load returns the builtin defaults overlaid with the YAML mapping at path.
// An empty path returns Builtin unchanged.
//
//	leave: Very easy
//	remote_work: "Yes"
func Load(path string) (FormDefaults, error) {
	d := Builtin()
	if path == "" {
		return d, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form defaults: %w", err)
	}

	overrides, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	maps.Copy(d, overrides)
	return d, nil
}

// Parse decodes a YAML mapping of field name to default answer. Unknown
// field names are rejected.
func Parse(data []byte) (FormDefaults, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for name := range raw {
		if !slices.Contains(models.FeatureFields, name) {
			return nil, fmt.Errorf("unknown survey field %q", name)
		}
	}
	return FormDefaults(raw), nil
}

// Apply merges submitted answers with the defaults. A field counts as
// submitted when present, even if empty.
func (d FormDefaults) Apply(submitted map[string][]string) map[string]string {
	values := make(map[string]string, len(models.FeatureFields))
	for _, name := range models.FeatureFields {
		if v, ok := submitted[name]; ok && len(v) > 0 {
			values[name] = v[0]
			continue
		}
		if v, ok := d[name]; ok {
			values[name] = v
		}
	}
	return values
}
