package service

import (
	"context"
	"fmt"
	"strings"

	"taxburden/domain"
	"taxburden/repository"
)

type SurveyService struct {
	repo repository.SurveyRepository
}

func NewSurveyService(repo repository.SurveyRepository) *SurveyService {
	return &SurveyService{repo: repo}
}

// Submit stores the optional follow-up survey of a submission. Only
// submission_id is required; the scores must be whole numbers from 0 to 10.
func (s *SurveyService) Submit(ctx context.Context, req domain.SurveyRequest) error {
	id := strings.TrimSpace(req.SubmissionID)
	if id == "" {
		return invalid("submission_id", "Missing submission_id")
	}

	effectiveness, err := integralScore("effectiveness_score", req.EffectivenessScore)
	if err != nil {
		return err
	}
	trust, err := integralScore("trust_central_gov_score", req.TrustCentralGovScore)
	if err != nil {
		return err
	}

	response := &domain.SurveyResponse{
		SubmissionID:         id,
		AgeBand:              trimmedOrNil(req.AgeBand),
		Gender:               trimmedOrNil(req.Gender),
		City:                 trimmedOrNil(req.City),
		TenantStatus:         trimmedOrNil(req.TenantStatus),
		EffectivenessScore:   effectiveness,
		TrustCentralGovScore: trust,
		PolicyPriority:       trimmedOrNil(req.PolicyPriority),
	}
	if err := s.repo.SaveSurvey(ctx, response); err != nil {
		return fmt.Errorf("save survey: %w", err)
	}
	return nil
}
