// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey loads, cleans and writes the mental-health survey dataset.

# Tables

A Table holds string cells with explicit missing markers. Raw values are
classified as missing with the same vocabulary pandas uses by default
(empty, "NA", "NaN", "null", ...):

	raw, err := survey.LoadCSV("data/raw_dataset.csv")
	if errors.Is(err, survey.ErrInputNotFound) {
		// fatal for training
	}

# Cleaning

Clean applies the fixed cleaning policy in order:

  - drop Timestamp, Country, state and comments
  - canonicalize Gender to Male/Female, removing everything else
  - fill self_employed and work_interfere with their mode
  - drop any row that still has a missing value

	cleaned, report, err := survey.Clean(raw, survey.CleanOptions{})

The gender mapping is a closed synonym list. Pass CleanOptions.Gender to
substitute a different normalizer.
*/
package survey
