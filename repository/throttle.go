package repository

import (
	"context"
	"time"
)

// Throttle limits how often a key may pass within a time window.
type Throttle interface {
	// Allow reports whether key may proceed now and records the attempt.
	Allow(ctx context.Context, key string, window time.Duration) (bool, error)
	// Release forgets the attempt recorded by a successful Allow.
	Release(ctx context.Context, key string) error
}

// SubmissionThrottle answers from stored submissions: a fingerprint passes when
// it has no submission inside the window. It records nothing itself.
type SubmissionThrottle struct {
	repo SubmissionRepository
	now  func() time.Time
}

func NewSubmissionThrottle(repo SubmissionRepository) *SubmissionThrottle {
	return &SubmissionThrottle{repo: repo, now: time.Now}
}

func (t *SubmissionThrottle) Allow(ctx context.Context, key string, window time.Duration) (bool, error) {
	recent, err := t.repo.HasRecentSubmission(ctx, key, t.now().Add(-window))
	if err != nil {
		return false, err
	}
	return !recent, nil
}

// Release is a no-op: a failed save leaves no row to count.
func (t *SubmissionThrottle) Release(context.Context, string) error {
	return nil
}
