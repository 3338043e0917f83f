// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"

	"github.com/a-h/templ"

	"github.com/danielhkuo/psychopredict/models"
)

// Questions are the form prompts, keyed by field name.
var Questions = map[string]string{
	models.FieldAge:                     "Age",
	models.FieldGender:                  "Gender",
	models.FieldSelfEmployed:            "Are you self-employed?",
	models.FieldFamilyHistory:           "Do you have a family history of mental illness?",
	models.FieldWorkInterfere:           "If you have a mental health condition, do you feel that it interferes with your work?",
	models.FieldNoEmployees:             "How many employees does your company or organization have?",
	models.FieldRemoteWork:              "Do you work remotely (outside of an office) at least 50% of the time?",
	models.FieldTechCompany:             "Is your employer primarily a tech company/organization?",
	models.FieldBenefits:                "Does your employer provide mental health benefits?",
	models.FieldCareOptions:             "Do you know the options for mental health care your employer provides?",
	models.FieldWellnessProgram:         "Has your employer ever discussed mental health as part of an employee wellness program?",
	models.FieldSeekHelp:                "Does your employer provide resources to learn more about mental health issues and how to seek help?",
	models.FieldAnonymity:               "Is your anonymity protected if you choose to take advantage of mental health or substance abuse treatment resources?",
	models.FieldLeave:                   "How easy is it for you to take medical leave for a mental health condition?",
	models.FieldMentalHealthConsequence: "Do you think that discussing a mental health issue with your employer would have negative consequences?",
	models.FieldPhysHealthConsequence:   "Do you think that discussing a physical health issue with your employer would have negative consequences?",
	models.FieldCoworkers:               "Would you be willing to discuss a mental health issue with your coworkers?",
	models.FieldSupervisor:              "Would you be willing to discuss a mental health issue with your direct supervisor(s)?",
	models.FieldMentalHealthInterview:   "Would you bring up a mental health issue with a potential employer in an interview?",
	models.FieldPhysHealthInterview:     "Would you bring up a physical health issue with a potential employer in an interview?",
	models.FieldMentalVsPhysical:        "Do you feel that your employer takes mental health as seriously as physical health?",
	models.FieldObsConsequence:          "Have you heard of or observed negative consequences for coworkers with mental health conditions in your workplace?",
}

// FormPage is the data behind the submission form.
type FormPage struct {
	// Values preselects answers, usually the configured defaults.
	Values map[string]string
	// Options lists the answers offered per categorical field. Fields
	// without options get a free-text input.
	Options map[string][]string
}

const head = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
label { display: block; margin-top: 1rem; font-weight: 600; }
select, input { margin-top: .25rem; padding: .25rem; }
.result { font-size: 1.25rem; }
.error { color: #a40000; }
</style>
</head>
<body>
`

const foot = "</body>\n</html>\n"

// page renders body inside the shared layout. The body is buffered so a
// failed render writes nothing.
func page(title string, body func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		fmt.Fprintf(&b, head, templ.EscapeString(title))
		body(&b)
		b.WriteString(foot)
		_, err := w.Write(b.Bytes())
		return err
	})
}

// Index renders the survey form posting to /predict.
func Index(p FormPage) templ.Component {
	return page("Mental Health in Tech: Treatment Prediction", func(b *bytes.Buffer) {
		b.WriteString("<h1>Mental Health in Tech</h1>\n")
		b.WriteString("<p>Answer the survey to estimate how likely you are to seek treatment.</p>\n")
		b.WriteString(`<form method="post" action="/predict">` + "\n")

		fmt.Fprintf(b, `<label for="%[1]s">%[2]s</label>`+"\n"+
			`<input type="number" id="%[1]s" name="%[1]s" min="0" max="120" required value="%[3]s">`+"\n",
			models.FieldAge, templ.EscapeString(Questions[models.FieldAge]), templ.EscapeString(p.Values[models.FieldAge]))

		for _, field := range models.FeatureFields[1:] {
			question := templ.EscapeString(Questions[field])
			current := p.Values[field]
			opts := p.Options[field]

			fmt.Fprintf(b, `<label for="%s">%s</label>`+"\n", field, question)
			if len(opts) == 0 {
				fmt.Fprintf(b, `<input type="text" id="%[1]s" name="%[1]s" value="%[2]s">`+"\n",
					field, templ.EscapeString(current))
				continue
			}

			if current != "" && !slices.Contains(opts, current) {
				opts = append(slices.Clone(opts), current)
			}
			fmt.Fprintf(b, `<select id="%[1]s" name="%[1]s">`+"\n", field)
			for _, opt := range opts {
				selected := ""
				if opt == current {
					selected = " selected"
				}
				v := templ.EscapeString(opt)
				fmt.Fprintf(b, `<option value="%s"%s>%s</option>`+"\n", v, selected, v)
			}
			b.WriteString("</select>\n")
		}

		b.WriteString(`<p><button type="submit">Predict</button></p>` + "\n</form>\n")
	})
}

// Result renders a prediction with its confidence as a percentage.
func Result(r models.PredictionResult) templ.Component {
	return page("Prediction Result", func(b *bytes.Buffer) {
		b.WriteString("<h1>Prediction Result</h1>\n")
		fmt.Fprintf(b, `<p class="result">Likely to seek treatment: <strong>%s</strong></p>`+"\n",
			templ.EscapeString(r.Label))
		fmt.Fprintf(b, `<p class="result">Confidence: <strong>%s%%</strong></p>`+"\n",
			strconv.FormatFloat(r.Confidence, 'f', 2, 64))
		b.WriteString(`<p><a href="/">Make another prediction</a></p>` + "\n")
	})
}

// Error renders a failed submission.
func Error(status int, message string) templ.Component {
	return page("Error", func(b *bytes.Buffer) {
		fmt.Fprintf(b, "<h1>%d %s</h1>\n", status, templ.EscapeString(http.StatusText(status)))
		fmt.Fprintf(b, `<p class="error">%s</p>`+"\n", templ.EscapeString(message))
		b.WriteString(`<p><a href="/">Back to the form</a></p>` + "\n")
	})
}
