package repository

import (
	"context"
	"sync"
	"time"

	"taxburden/domain"
)

// SubmissionRepositoryMemory is an in-memory implementation of
// SubmissionRepository and SurveyRepository.
type SubmissionRepositoryMemory struct {
	mu          sync.RWMutex
	submissions []domain.Submission
	surveys     []domain.SurveyResponse
}

// NewSubmissionRepositoryMemory creates a new in-memory submission repository.
func NewSubmissionRepositoryMemory() *SubmissionRepositoryMemory {
	return &SubmissionRepositoryMemory{
		submissions: []domain.Submission{},
		surveys:     []domain.SurveyResponse{},
	}
}

// Save stores a copy of the submission in memory.
func (r *SubmissionRepositoryMemory) Save(
	_ context.Context,
	submission *domain.Submission,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}
	r.submissions = append(r.submissions, *submission)
	return nil
}

func (r *SubmissionRepositoryMemory) HasRecentSubmission(
	_ context.Context,
	fingerprint string,
	since time.Time,
) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.submissions {
		if s.ClientFingerprint != nil && *s.ClientFingerprint == fingerprint &&
			!s.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (r *SubmissionRepositoryMemory) LatestByFingerprint(
	_ context.Context,
	fingerprint string,
) (*domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.Submission
	for i := range r.submissions {
		s := &r.submissions[i]
		if s.ClientFingerprint == nil || *s.ClientFingerprint != fingerprint {
			continue
		}
		// en empate gana la última insertada
		if latest == nil || !s.CreatedAt.Before(latest.CreatedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	found := *latest
	return &found, nil
}

func (r *SubmissionRepositoryMemory) UpdateFairness(
	_ context.Context,
	id string,
	score float64,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.submissions {
		if r.submissions[i].ID == id {
			r.submissions[i].FairnessScore = &score
			return nil
		}
	}
	return ErrNotFound
}

func (r *SubmissionRepositoryMemory) SaveSurvey(
	_ context.Context,
	response *domain.SurveyResponse,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	response.ID = uint(len(r.surveys) + 1)
	if response.CreatedAt.IsZero() {
		response.CreatedAt = time.Now().UTC()
	}
	r.surveys = append(r.surveys, *response)
	return nil
}

// Submissions returns a snapshot of the stored submissions.
func (r *SubmissionRepositoryMemory) Submissions() []domain.Submission {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Submission(nil), r.submissions...)
}

// Surveys returns a snapshot of the stored survey responses.
func (r *SubmissionRepositoryMemory) Surveys() []domain.SurveyResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.SurveyResponse(nil), r.surveys...)
}
