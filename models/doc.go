// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the form, prediction, and response types.

# Domain Types

  - SurveyForm: the 22 survey answers fed to the classifier
  - PredictionResult: predicted label and confidence percentage
  - PredictionRecord: a persisted prediction with its inputs

# Field Names

Field constants match the dataset column names, which are also the HTML
form field names:

	FieldAge     = "Age"
	FieldGender  = "Gender"
	FieldLeave   = "leave"
	...

FeatureFields lists all of them in form order.

# Response Types

  - PredictionListResponse: predictions, count
  - ErrorResponse: error, message
*/
package models
