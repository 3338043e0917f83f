// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags and Environment Variables

	-p               PORT                 Server port (default 3318)
	-d               DATABASE_URL         Database URL (default file:psychopredict.db)
	-t               DATABASE_TYPE        sqlite or postgres (default sqlite)
	-model           MODEL_PATH           Model artifact path
	-defaults        FORM_DEFAULTS_PATH   YAML file overriding form defaults
	-positive-class  POSITIVE_CLASS       Label reported as confidence (default Yes)
	-admin-key       ADMIN_KEY            Key for GET /predictions
	-log-level       LOG_LEVEL            debug, info, warn, error
	-log-format      LOG_FORMAT           text or json

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded first; variables already set in the
environment win over it.

# Validation

ParseFlags returns an error for an out-of-range or non-numeric port and
for database types other than sqlite and postgres.
*/
package cliparse
