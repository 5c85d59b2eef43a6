package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

const submissionsSchema = `
	CREATE TABLE IF NOT EXISTS booking_submissions (
		id               UUID PRIMARY KEY,
		session_id       TEXT NOT NULL,
		reservation_code TEXT,
		status           TEXT NOT NULL,
		payload          JSONB NOT NULL,
		error_message    TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_booking_submissions_session ON booking_submissions (session_id);
`

// SubmissionRepo keeps a log of reservation attempts in Postgres
type SubmissionRepo struct {
	db *sqlx.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepo {
	return &SubmissionRepo{db: db}
}

// EnsureSchema creates the submission log table when missing
func (r *SubmissionRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, submissionsSchema); err != nil {
		return fmt.Errorf("failed to create submissions schema: %w", err)
	}
	return nil
}

// RecordSubmission inserts one attempt
func (r *SubmissionRepo) RecordSubmission(ctx context.Context, record *models.SubmissionRecord) error {
	query := `
		INSERT INTO booking_submissions (
			id, session_id, reservation_code, status, payload, error_message, created_at
		) VALUES (
			:id, :session_id, :reservation_code, :status, :payload, :error_message, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("failed to record submission: %w", err)
	}
	return nil
}

// ListSubmissions returns a session's attempts, oldest first
func (r *SubmissionRepo) ListSubmissions(ctx context.Context, sessionID string) ([]models.SubmissionRecord, error) {
	query := r.db.Rebind(`
		SELECT id, session_id, reservation_code, status, payload, error_message, created_at
		FROM booking_submissions
		WHERE session_id = ?
		ORDER BY created_at ASC
	`)

	var records []models.SubmissionRecord
	if err := r.db.SelectContext(ctx, &records, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return records, nil
}
