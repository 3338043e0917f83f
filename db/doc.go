// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the database connection, schema, and prediction store.

# Connecting

Open accepts "sqlite" (modernc.org/sqlite, the default) or "postgres"
(lib/pq):

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

SQLite connections are capped at one, which serializes inserts.

# Schema Creation

CreateSchema initializes the prediction_record table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.

# Store

Store writes one row per served prediction and never updates or deletes:

	store := db.NewStore(conn, cfg.DatabaseType)
	err := store.InsertPrediction(ctx, &record)

Queries are written with $N placeholders and rebound to ? for SQLite.
*/
package db
