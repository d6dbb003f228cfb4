// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"risk-assessor/internal/models"
	"risk-assessor/internal/report"
)

// AssessmentRecord is one persisted assessment run.
type AssessmentRecord struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Profile   models.UserProfile `json:"profile"`
	Portfolio models.Portfolio   `json:"portfolio"`
	Report    *report.Report     `json:"report"`
}

// AssessmentFilter represents filters for querying assessment history.
type AssessmentFilter struct {
	Category  string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}

// DataStore defines the interface for assessment persistence.
type DataStore interface {
	SaveAssessment(ctx context.Context, record *AssessmentRecord) error
	GetAssessment(ctx context.Context, id string) (*AssessmentRecord, error)
	ListAssessments(ctx context.Context, filter AssessmentFilter) ([]AssessmentRecord, error)
	PruneAssessments(ctx context.Context, olderThan time.Time) (int64, error)
	Close() error
}
