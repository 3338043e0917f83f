// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL sticks to types both SQLite and PostgreSQL accept.
const schema = `
CREATE TABLE IF NOT EXISTS prediction_record (
    id TEXT PRIMARY KEY,
    age INTEGER NOT NULL,
    gender TEXT NOT NULL,
    self_employed TEXT NOT NULL,
    family_history TEXT NOT NULL,
    work_interfere TEXT NOT NULL,
    no_employees TEXT NOT NULL,
    remote_work TEXT NOT NULL,
    tech_company TEXT NOT NULL,
    benefits TEXT NOT NULL,
    care_options TEXT NOT NULL,
    wellness_program TEXT NOT NULL,
    seek_help TEXT NOT NULL,
    anonymity TEXT NOT NULL,
    leave TEXT NOT NULL,
    mental_health_consequence TEXT NOT NULL,
    phys_health_consequence TEXT NOT NULL,
    coworkers TEXT NOT NULL,
    supervisor TEXT NOT NULL,
    mental_health_interview TEXT NOT NULL,
    phys_health_interview TEXT NOT NULL,
    mental_vs_physical TEXT NOT NULL,
    obs_consequence TEXT NOT NULL,
    prediction_result TEXT NOT NULL,
    confidence_score REAL NOT NULL CHECK (confidence_score >= 0 AND confidence_score <= 100),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_prediction_record_created_at ON prediction_record(created_at);
`
