package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Survey answer fields, named as in the dataset and the HTML form.
const (
	FieldAge                     = "Age"
	FieldGender                  = "Gender"
	FieldSelfEmployed            = "self_employed"
	FieldFamilyHistory           = "family_history"
	FieldWorkInterfere           = "work_interfere"
	FieldNoEmployees             = "no_employees"
	FieldRemoteWork              = "remote_work"
	FieldTechCompany             = "tech_company"
	FieldBenefits                = "benefits"
	FieldCareOptions             = "care_options"
	FieldWellnessProgram         = "wellness_program"
	FieldSeekHelp                = "seek_help"
	FieldAnonymity               = "anonymity"
	FieldLeave                   = "leave"
	FieldMentalHealthConsequence = "mental_health_consequence"
	FieldPhysHealthConsequence   = "phys_health_consequence"
	FieldCoworkers               = "coworkers"
	FieldSupervisor              = "supervisor"
	FieldMentalHealthInterview   = "mental_health_interview"
	FieldPhysHealthInterview     = "phys_health_interview"
	FieldMentalVsPhysical        = "mental_vs_physical"
	FieldObsConsequence          = "obs_consequence"
)

// Prediction labels
const (
	LabelYes = "Yes"
	LabelNo  = "No"
)

// FeatureFields lists every model input in form order.
var FeatureFields = []string{
	FieldAge, FieldGender, FieldSelfEmployed, FieldFamilyHistory,
	FieldWorkInterfere, FieldNoEmployees, FieldRemoteWork, FieldTechCompany,
	FieldBenefits, FieldCareOptions, FieldWellnessProgram, FieldSeekHelp,
	FieldAnonymity, FieldLeave, FieldMentalHealthConsequence,
	FieldPhysHealthConsequence, FieldCoworkers, FieldSupervisor,
	FieldMentalHealthInterview, FieldPhysHealthInterview,
	FieldMentalVsPhysical, FieldObsConsequence,
}

var ErrInvalidAge = errors.New("age must be a whole number")

// Domain types

// SurveyForm is one respondent's answers.
type SurveyForm struct {
	Age                     int    `json:"age"`
	Gender                  string `json:"gender"`
	SelfEmployed            string `json:"self_employed"`
	FamilyHistory           string `json:"family_history"`
	WorkInterfere           string `json:"work_interfere"`
	NoEmployees             string `json:"no_employees"`
	RemoteWork              string `json:"remote_work"`
	TechCompany             string `json:"tech_company"`
	Benefits                string `json:"benefits"`
	CareOptions             string `json:"care_options"`
	WellnessProgram         string `json:"wellness_program"`
	SeekHelp                string `json:"seek_help"`
	Anonymity               string `json:"anonymity"`
	Leave                   string `json:"leave"`
	MentalHealthConsequence string `json:"mental_health_consequence"`
	PhysHealthConsequence   string `json:"phys_health_consequence"`
	Coworkers               string `json:"coworkers"`
	Supervisor              string `json:"supervisor"`
	MentalHealthInterview   string `json:"mental_health_interview"`
	PhysHealthInterview     string `json:"phys_health_interview"`
	MentalVsPhysical        string `json:"mental_vs_physical"`
	ObsConsequence          string `json:"obs_consequence"`
}

// textFields pairs every string answer with its field name.
func (f *SurveyForm) textFields() []struct {
	name string
	ptr  *string
} {
	return []struct {
		name string
		ptr  *string
	}{
		{FieldGender, &f.Gender},
		{FieldSelfEmployed, &f.SelfEmployed},
		{FieldFamilyHistory, &f.FamilyHistory},
		{FieldWorkInterfere, &f.WorkInterfere},
		{FieldNoEmployees, &f.NoEmployees},
		{FieldRemoteWork, &f.RemoteWork},
		{FieldTechCompany, &f.TechCompany},
		{FieldBenefits, &f.Benefits},
		{FieldCareOptions, &f.CareOptions},
		{FieldWellnessProgram, &f.WellnessProgram},
		{FieldSeekHelp, &f.SeekHelp},
		{FieldAnonymity, &f.Anonymity},
		{FieldLeave, &f.Leave},
		{FieldMentalHealthConsequence, &f.MentalHealthConsequence},
		{FieldPhysHealthConsequence, &f.PhysHealthConsequence},
		{FieldCoworkers, &f.Coworkers},
		{FieldSupervisor, &f.Supervisor},
		{FieldMentalHealthInterview, &f.MentalHealthInterview},
		{FieldPhysHealthInterview, &f.PhysHealthInterview},
		{FieldMentalVsPhysical, &f.MentalVsPhysical},
		{FieldObsConsequence, &f.ObsConsequence},
	}
}

// Values returns the answers keyed by field name.
func (f SurveyForm) Values() map[string]string {
	values := map[string]string{FieldAge: strconv.Itoa(f.Age)}
	for _, tf := range f.textFields() {
		values[tf.name] = *tf.ptr
	}
	return values
}

// SurveyFormFromValues builds a form from field values. Age must parse as
// an integer; text fields that are absent stay empty.
func SurveyFormFromValues(values map[string]string) (SurveyForm, error) {
	var f SurveyForm

	age, err := strconv.Atoi(strings.TrimSpace(values[FieldAge]))
	if err != nil {
		return SurveyForm{}, fmt.Errorf("%w: %q", ErrInvalidAge, values[FieldAge])
	}
	f.Age = age

	for _, tf := range f.textFields() {
		*tf.ptr = values[tf.name]
	}
	return f, nil
}

// PredictionResult is the classifier output for one form.
type PredictionResult struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"` // P(Yes) as a percentage
}

// PredictionRecord is a persisted prediction with its inputs.
type PredictionRecord struct {
	ID string `json:"id"`
	SurveyForm
	PredictionResult string    `json:"prediction_result"`
	ConfidenceScore  float64   `json:"confidence_score"`
	CreatedAt        time.Time `json:"created_at"`
}

func (r PredictionRecord) String() string {
	return fmt.Sprintf("Prediction for age %d made at %s", r.Age, r.CreatedAt.Format("2006-01-02 15:04"))
}

// Response types

type PredictionListResponse struct {
	Predictions []PredictionRecord `json:"predictions"`
	Count       int                `json:"count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
