package service

import (
	"taxburden/domain"
)

type EstimateService struct {
	estimator *Estimator
}

// NewEstimateService creates a new EstimateService backed by estimator.
func NewEstimateService(estimator *Estimator) *EstimateService {
	return &EstimateService{estimator: estimator}
}

// Estimate validates a posted profile and runs the estimator on it.
func (s *EstimateService) Estimate(
	req domain.ProfileRequest,
) (domain.EstimateResult, error) {
	p, variant, err := ProfileFromRequest(req, false)
	if err != nil {
		return domain.EstimateResult{}, err
	}
	return s.estimate(p, variant)
}

func (s *EstimateService) estimate(
	p domain.Profile,
	variant domain.Variant,
) (domain.EstimateResult, error) {
	if err := ValidateProfile(p, variant); err != nil {
		return domain.EstimateResult{}, err
	}
	return s.estimator.Estimate(p, variant)
}
