package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "risk-assessor/internal/errors"
	"risk-assessor/internal/report"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based data store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool for concurrent access
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Assessments table for completed assessment runs
	CREATE TABLE IF NOT EXISTS assessments (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		risk_score INTEGER NOT NULL,
		category TEXT NOT NULL,
		time_horizon TEXT NOT NULL,
		primary_strategy TEXT NOT NULL,
		profile TEXT NOT NULL,
		portfolio TEXT NOT NULL,
		report TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_assessments_created ON assessments(created_at);
	CREATE INDEX IF NOT EXISTS idx_assessments_category ON assessments(category);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveAssessment persists a completed assessment run.
func (s *SQLiteStore) SaveAssessment(ctx context.Context, record *AssessmentRecord) error {
	profileJSON, err := json.Marshal(record.Profile)
	if err != nil {
		return &apperrors.StoreError{Operation: "save assessment", Err: err}
	}
	portfolioJSON, err := json.Marshal(record.Portfolio)
	if err != nil {
		return &apperrors.StoreError{Operation: "save assessment", Err: err}
	}
	reportJSON, err := json.Marshal(record.Report)
	if err != nil {
		return &apperrors.StoreError{Operation: "save assessment", Err: err}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO assessments (id, created_at, risk_score, category, time_horizon, primary_strategy, profile, portfolio, report)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.CreatedAt,
		record.Report.RiskAssessment.RiskScore,
		string(record.Report.RiskCategory.FinalCategory),
		string(record.Report.Recommendation.TimeHorizon),
		record.Report.Recommendation.PrimaryStrategy,
		string(profileJSON), string(portfolioJSON), string(reportJSON))
	if err != nil {
		return &apperrors.StoreError{Operation: "save assessment", Err: err}
	}
	return nil
}

// GetAssessment retrieves a single assessment by ID.
func (s *SQLiteStore) GetAssessment(ctx context.Context, id string) (*AssessmentRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, profile, portfolio, report
		FROM assessments WHERE id = ?
	`, id)

	record, err := scanAssessment(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrDataNotFound
	}
	if err != nil {
		return nil, &apperrors.StoreError{Operation: "get assessment", Err: err}
	}
	return record, nil
}

// ListAssessments retrieves assessment history matching the filter,
// newest first.
func (s *SQLiteStore) ListAssessments(ctx context.Context, filter AssessmentFilter) ([]AssessmentRecord, error) {
	query := "SELECT id, created_at, profile, portfolio, report FROM assessments WHERE 1=1"
	args := []interface{}{}

	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	if !filter.StartDate.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query += " AND created_at <= ?"
		args = append(args, filter.EndDate)
	}

	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &apperrors.StoreError{Operation: "list assessments", Err: err}
	}
	defer rows.Close()

	var records []AssessmentRecord
	for rows.Next() {
		record, err := scanAssessment(rows)
		if err != nil {
			return nil, &apperrors.StoreError{Operation: "list assessments", Err: err}
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}

// PruneAssessments deletes assessments created before the cutoff and
// returns the number removed.
func (s *SQLiteStore) PruneAssessments(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM assessments WHERE created_at < ?", olderThan)
	if err != nil {
		return 0, &apperrors.StoreError{Operation: "prune assessments", Err: err}
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAssessment(row rowScanner) (*AssessmentRecord, error) {
	var record AssessmentRecord
	var profileJSON, portfolioJSON, reportJSON string

	if err := row.Scan(&record.ID, &record.CreatedAt, &profileJSON, &portfolioJSON, &reportJSON); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(profileJSON), &record.Profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if err := json.Unmarshal([]byte(portfolioJSON), &record.Portfolio); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio: %w", err)
	}
	record.Report = &report.Report{}
	if err := json.Unmarshal([]byte(reportJSON), record.Report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	return &record, nil
}
