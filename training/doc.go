// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package training runs the offline training flow:

	raw CSV → survey.Clean → processed CSV → pipeline.Fit → model artifact

The processed dataset is written before fitting starts. A missing raw file
returns an error wrapping survey.ErrInputNotFound and leaves no output.

	sum, err := training.Run(ctx, training.DefaultConfig(), slog.Default())
*/
package training
