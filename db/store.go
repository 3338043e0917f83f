// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/psychopredict/models"
)

// Store persists prediction records. Records are only ever inserted.
type Store struct {
	db     *sql.DB
	dbType string
}

func NewStore(db *sql.DB, dbType string) *Store {
	return &Store{db: db, dbType: dbType}
}

var placeholder = regexp.MustCompile(`\$\d+`)

// rebind rewrites $N placeholders to ? for SQLite. Queries must use their
// placeholders in ascending order.
func (s *Store) rebind(query string) string {
	if s.dbType == TypeSQLite {
		return placeholder.ReplaceAllString(query, "?")
	}
	return query
}

// InsertPrediction stores rec, filling in ID and CreatedAt when unset.
func (s *Store) InsertPrediction(ctx context.Context, rec *models.PredictionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO prediction_record (
			id, age, gender, self_employed, family_history, work_interfere,
			no_employees, remote_work, tech_company, benefits, care_options,
			wellness_program, seek_help, anonymity, leave,
			mental_health_consequence, phys_health_consequence, coworkers,
			supervisor, mental_health_interview, phys_health_interview,
			mental_vs_physical, obs_consequence,
			prediction_result, confidence_score, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
	`),
		rec.ID, rec.Age, rec.Gender, rec.SelfEmployed, rec.FamilyHistory, rec.WorkInterfere,
		rec.NoEmployees, rec.RemoteWork, rec.TechCompany, rec.Benefits, rec.CareOptions,
		rec.WellnessProgram, rec.SeekHelp, rec.Anonymity, rec.Leave,
		rec.MentalHealthConsequence, rec.PhysHealthConsequence, rec.Coworkers,
		rec.Supervisor, rec.MentalHealthInterview, rec.PhysHealthInterview,
		rec.MentalVsPhysical, rec.ObsConsequence,
		rec.PredictionResult, rec.ConfidenceScore, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert prediction record: %w", err)
	}
	return nil
}

// ListPredictions returns up to limit records, newest first.
func (s *Store) ListPredictions(ctx context.Context, limit int) ([]models.PredictionRecord, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, age, gender, self_employed, family_history, work_interfere,
		       no_employees, remote_work, tech_company, benefits, care_options,
		       wellness_program, seek_help, anonymity, leave,
		       mental_health_consequence, phys_health_consequence, coworkers,
		       supervisor, mental_health_interview, phys_health_interview,
		       mental_vs_physical, obs_consequence,
		       prediction_result, confidence_score, created_at
		FROM prediction_record
		ORDER BY created_at DESC, id
		LIMIT $1
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query prediction records: %w", err)
	}
	defer rows.Close()

	var records []models.PredictionRecord
	for rows.Next() {
		var r models.PredictionRecord
		err := rows.Scan(
			&r.ID, &r.Age, &r.Gender, &r.SelfEmployed, &r.FamilyHistory, &r.WorkInterfere,
			&r.NoEmployees, &r.RemoteWork, &r.TechCompany, &r.Benefits, &r.CareOptions,
			&r.WellnessProgram, &r.SeekHelp, &r.Anonymity, &r.Leave,
			&r.MentalHealthConsequence, &r.PhysHealthConsequence, &r.Coworkers,
			&r.Supervisor, &r.MentalHealthInterview, &r.PhysHealthInterview,
			&r.MentalVsPhysical, &r.ObsConsequence,
			&r.PredictionResult, &r.ConfidenceScore, timestamp{&r.CreatedAt},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read prediction records: %w", err)
	}

	return records, nil
}

// CountPredictions returns the number of stored records.
func (s *Store) CountPredictions(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM prediction_record").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count prediction records: %w", err)
	}
	return n, nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// timestamp scans TIMESTAMP columns from drivers that hand back either
// time.Time or text.
type timestamp struct {
	t *time.Time
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (ts timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts.t = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}
