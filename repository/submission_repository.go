package repository

import (
	"context"
	"errors"
	"time"

	"taxburden/domain"
)

// ErrNotFound is returned when no stored row matches a lookup.
var ErrNotFound = errors.New("not found")

type SubmissionRepository interface {
	Save(ctx context.Context, submission *domain.Submission) error
	// HasRecentSubmission reports whether fingerprint submitted at or after since.
	HasRecentSubmission(ctx context.Context, fingerprint string, since time.Time) (bool, error)
	// LatestByFingerprint returns the newest submission of fingerprint or ErrNotFound.
	LatestByFingerprint(ctx context.Context, fingerprint string) (*domain.Submission, error)
	UpdateFairness(ctx context.Context, id string, score float64) error
}

type SurveyRepository interface {
	SaveSurvey(ctx context.Context, response *domain.SurveyResponse) error
}
