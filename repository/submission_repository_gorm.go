package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taxburden/domain"
)

// SubmissionRepositoryGorm stores submissions and surveys in Postgres.
type SubmissionRepositoryGorm struct {
	db *gorm.DB
}

func NewSubmissionRepositoryGorm(db *gorm.DB) *SubmissionRepositoryGorm {
	return &SubmissionRepositoryGorm{db: db}
}

// Migrate creates or updates the submission and survey tables.
func (r *SubmissionRepositoryGorm) Migrate() error {
	return r.db.AutoMigrate(&domain.Submission{}, &domain.SurveyResponse{})
}

func (r *SubmissionRepositoryGorm) Save(ctx context.Context, submission *domain.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *SubmissionRepositoryGorm) HasRecentSubmission(
	ctx context.Context,
	fingerprint string,
	since time.Time,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Submission{}).
		Where("client_fingerprint = ? AND created_at >= ?", fingerprint, since).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SubmissionRepositoryGorm) LatestByFingerprint(
	ctx context.Context,
	fingerprint string,
) (*domain.Submission, error) {
	var s domain.Submission
	err := r.db.WithContext(ctx).
		Where("client_fingerprint = ?", fingerprint).
		Order("created_at desc").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepositoryGorm) UpdateFairness(ctx context.Context, id string, score float64) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Submission{}).
		Where("id = ?", id).
		Update("fairness_score", score)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SubmissionRepositoryGorm) SaveSurvey(ctx context.Context, response *domain.SurveyResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}
