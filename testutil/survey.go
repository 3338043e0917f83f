// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"math/rand/v2"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/danielhkuo/psychopredict/models"
	"github.com/danielhkuo/psychopredict/pipeline"
	"github.com/danielhkuo/psychopredict/survey"
)

// RawColumns is the column layout of the raw survey export.
var RawColumns = []string{
	"Timestamp", "Age", "Gender", "Country", "state", "self_employed",
	"family_history", "treatment", "work_interfere", "no_employees",
	"remote_work", "tech_company", "benefits", "care_options",
	"wellness_program", "seek_help", "anonymity", "leave",
	"mental_health_consequence", "phys_health_consequence", "coworkers",
	"supervisor", "mental_health_interview", "phys_health_interview",
	"mental_vs_physical", "obs_consequence", "comments",
}

var (
	yesNo      = []string{"No", "Yes"}
	yesNoMaybe = []string{"Maybe", "No", "Yes"}
	dontKnow   = []string{"Don't know", "No", "Yes"}
	someOfThem = []string{"No", "Some of them", "Yes"}
)

// answers lists the possible answers for each categorical survey field.
var answers = map[string][]string{
	models.FieldSelfEmployed:            yesNo,
	models.FieldFamilyHistory:           yesNo,
	models.FieldWorkInterfere:           {"Never", "Rarely", "Sometimes", "Often"},
	models.FieldNoEmployees:             {"1-5", "6-25", "26-100", "100-500", "500-1000", "More than 1000"},
	models.FieldRemoteWork:              yesNo,
	models.FieldTechCompany:             yesNo,
	models.FieldBenefits:                dontKnow,
	models.FieldCareOptions:             {"No", "Not sure", "Yes"},
	models.FieldWellnessProgram:         dontKnow,
	models.FieldSeekHelp:                dontKnow,
	models.FieldAnonymity:               dontKnow,
	models.FieldLeave:                   {"Don't know", "Somewhat difficult", "Somewhat easy", "Very difficult", "Very easy"},
	models.FieldMentalHealthConsequence: yesNoMaybe,
	models.FieldPhysHealthConsequence:   yesNoMaybe,
	models.FieldCoworkers:               someOfThem,
	models.FieldSupervisor:              someOfThem,
	models.FieldMentalHealthInterview:   yesNoMaybe,
	models.FieldPhysHealthInterview:     yesNoMaybe,
	models.FieldMentalVsPhysical:        dontKnow,
	models.FieldObsConsequence:          yesNo,
}

// Raw gender spellings; the last three normalize to Other.
var genders = []string{
	"Male", "male", "M", "m", "Cis Male", "Man",
	"Female", "female", "F", "Woman",
	"non-binary", "Agender", "Male ",
}

// SyntheticSurvey generates n raw survey rows in RawColumns layout. The
// same seed always yields the same table. treatment depends mostly on
// family_history, work_interfere and care_options, so a fitted model
// should beat chance comfortably. About 5% of self_employed and 15% of
// work_interfere answers are NA.
func SyntheticSurvey(n int, seed uint64) *survey.Table {
	rng := rand.New(rand.NewPCG(seed, 0))
	t, err := survey.NewTable(RawColumns)
	if err != nil {
		panic(err)
	}

	pick := func(field string) string {
		opts := answers[field]
		return opts[rng.IntN(len(opts))]
	}

	for i := 0; i < n; i++ {
		v := make(map[string]string, len(RawColumns))
		v["Timestamp"] = "2014-08-27 11:" + pad2(i%60) + ":00"
		v["Age"] = strconv.Itoa(18 + rng.IntN(45))
		v["Gender"] = genders[rng.IntN(len(genders))]
		v["Country"] = "United States"
		v["state"] = "NA"
		v["comments"] = "NA"
		for field := range answers {
			v[field] = pick(field)
		}
		if rng.Float64() < 0.05 {
			v[models.FieldSelfEmployed] = "NA"
		}
		if rng.Float64() < 0.15 {
			v[models.FieldWorkInterfere] = "NA"
		}

		score := 0
		if v[models.FieldFamilyHistory] == "Yes" {
			score += 2
		}
		switch v[models.FieldWorkInterfere] {
		case "Often":
			score += 2
		case "Sometimes":
			score++
		case "Never":
			score -= 2
		}
		if v[models.FieldCareOptions] == "Yes" {
			score++
		}
		treated := score >= 2
		if rng.Float64() < 0.05 {
			treated = !treated
		}
		v["treatment"] = "No"
		if treated {
			v["treatment"] = "Yes"
		}

		row := make([]string, len(RawColumns))
		for j, col := range RawColumns {
			row[j] = v[col]
		}
		if err := t.AppendRow(row); err != nil {
			panic(err)
		}
	}
	return t
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// WriteSyntheticCSV writes SyntheticSurvey(n, 7) to a temp file and
// returns its path.
func WriteSyntheticCSV(t *testing.T, n int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "raw_dataset.csv")
	if err := survey.SaveCSV(path, SyntheticSurvey(n, 7)); err != nil {
		t.Fatalf("Failed to write synthetic survey: %v", err)
	}
	return path
}

// CleanedSurvey returns SyntheticSurvey(n, 7) after cleaning.
func CleanedSurvey(t *testing.T, n int) *survey.Table {
	t.Helper()

	cleaned, _, err := survey.Clean(SyntheticSurvey(n, 7), survey.CleanOptions{})
	if err != nil {
		t.Fatalf("Failed to clean synthetic survey: %v", err)
	}
	return cleaned
}

// TestForestConfig is a small forest that trains quickly.
func TestForestConfig() pipeline.ForestConfig {
	cfg := pipeline.DefaultForestConfig()
	cfg.Estimators = 25
	cfg.MaxDepth = 10
	return cfg
}

var (
	trainedOnce     sync.Once
	trainedPipeline *pipeline.Pipeline
	trainedErr      error
)

// TrainedPipeline returns a pipeline fitted on 400 synthetic rows. It is
// trained once per test binary and must not be modified.
func TrainedPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()

	trainedOnce.Do(func() {
		cleaned, _, err := survey.Clean(SyntheticSurvey(400, 7), survey.CleanOptions{})
		if err != nil {
			trainedErr = err
			return
		}
		p := pipeline.New(TestForestConfig())
		if err := p.Fit(cleaned, survey.ColumnTreatment); err != nil {
			trainedErr = err
			return
		}
		trainedPipeline = p
	})
	if trainedErr != nil {
		t.Fatalf("Failed to train test pipeline: %v", trainedErr)
	}
	return trainedPipeline
}

// SampleForm is a complete form using answers the synthetic survey knows.
func SampleForm() models.SurveyForm {
	return models.SurveyForm{
		Age:                     29,
		Gender:                  "Male",
		SelfEmployed:            "No",
		FamilyHistory:           "Yes",
		WorkInterfere:           "Often",
		NoEmployees:             "26-100",
		RemoteWork:              "No",
		TechCompany:             "Yes",
		Benefits:                "Yes",
		CareOptions:             "Not sure",
		WellnessProgram:         "No",
		SeekHelp:                "No",
		Anonymity:               "Don't know",
		Leave:                   "Somewhat easy",
		MentalHealthConsequence: "No",
		PhysHealthConsequence:   "No",
		Coworkers:               "Some of them",
		Supervisor:              "Yes",
		MentalHealthInterview:   "No",
		PhysHealthInterview:     "Maybe",
		MentalVsPhysical:        "Yes",
		ObsConsequence:          "No",
	}
}
