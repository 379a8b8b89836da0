package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"taxburden/domain"
	"taxburden/repository"
)

var log = logrus.WithField("module", "service")

// SubmitOutcome is what the submit endpoint reports back. Stored is false when
// the request was silently dropped.
type SubmitOutcome struct {
	Stored       bool
	SubmissionID string
	Result       *domain.EstimateResult
}

type SubmissionService struct {
	estimates *EstimateService
	repo      repository.SubmissionRepository
	throttle  repository.Throttle
	window    time.Duration
	now       func() time.Time
}

// NewSubmissionService creates a SubmissionService. A nil throttle disables
// per-fingerprint limiting.
func NewSubmissionService(
	estimates *EstimateService,
	repo repository.SubmissionRepository,
	throttle repository.Throttle,
	window time.Duration,
) *SubmissionService {
	if window <= 0 {
		window = DefaultSubmissionWindow
	}
	return &SubmissionService{
		estimates: estimates,
		repo:      repo,
		throttle:  throttle,
		window:    window,
		now:       time.Now,
	}
}

// Submit validates a form submission, computes its estimate and stores it.
func (s *SubmissionService) Submit(
	ctx context.Context,
	req domain.SubmissionRequest,
) (SubmitOutcome, error) {

	// honeypot: se acepta pero no se guarda
	if strings.TrimSpace(req.Honeypot) != "" {
		log.Debug("honeypot filled, dropping submission")
		return SubmitOutcome{}, nil
	}

	p, variant, err := ProfileFromRequest(req.ProfileRequest, true)
	if err != nil {
		return SubmitOutcome{}, err
	}
	if req.ConsentAnalytics == nil {
		return SubmitOutcome{}, missing("consent_analytics")
	}

	result, err := s.estimates.estimate(p, variant)
	if err != nil {
		return SubmitOutcome{}, err
	}

	fingerprint := trimmedOrNil(req.ClientFingerprint)
	recorded := false
	if fingerprint != nil && s.throttle != nil {
		ok, err := s.throttle.Allow(ctx, *fingerprint, s.window)
		switch {
		case err != nil:
			log.WithError(err).Warn("throttle lookup failed, accepting submission")
		case !ok:
			log.WithField("fingerprint", *fingerprint).Info("submission throttled")
			return SubmitOutcome{}, ErrTooManySubmissions
		default:
			recorded = true
		}
	}

	submission := &domain.Submission{
		ID:                 uuid.New().String(),
		CreatedAt:          s.now().UTC(),
		SimVersion:         string(variant),
		Occupation:         trimmedOrNil(req.Occupation),
		NetIncomeBand:      trimmedOrNil(req.NetIncomeBand),
		WageGrossMonthly:   p.WageGrossMonthly,
		OtherIncomeMonthly: p.OtherIncomeMonthly,
		AnnualGrossTotal:   result.AnnualGrossTotal,
		DirectTaxTotal:     result.DirectTaxTotal,
		SavingsRate:        p.SavingsRate,
		SpendFood:          p.SpendFood,
		SpendRent:          p.SpendRent,
		SpendTransport:     p.SpendTransport,
		SpendOther:         p.SpendOther,
		HasCar:             p.HasCar,
		Smokes:             p.Smokes,
		DrinksAlcohol:      p.DrinksAlcohol,
		ResultTaxPctMin:    result.ResultTaxPctMin,
		ResultTaxPctMax:    result.ResultTaxPctMax,
		ResultTLMin:        result.ResultTLMin,
		ResultTLMax:        result.ResultTLMax,
		ConsentAnalytics:   req.ConsentAnalytics.Bool(),
		ClientFingerprint:  fingerprint,
	}
	if req.OwnsRealEstate != nil {
		owns := req.OwnsRealEstate.Bool()
		submission.OwnsRealEstate = &owns
	}

	if err := s.repo.Save(ctx, submission); err != nil {
		// sin fila guardada, el reintento no debe contar como repetido
		if recorded {
			if rerr := s.throttle.Release(context.WithoutCancel(ctx), *fingerprint); rerr != nil {
				log.WithError(rerr).Warn("releasing throttle key")
			}
		}
		return SubmitOutcome{}, fmt.Errorf("save submission: %w", err)
	}

	log.WithFields(logrus.Fields{
		"submission_id": submission.ID,
		"sim_version":   submission.SimVersion,
	}).Info("submission stored")

	return SubmitOutcome{
		Stored:       true,
		SubmissionID: submission.ID,
		Result:       &result,
	}, nil
}

// UpdateFairness attaches a 0..10 fairness score to the newest submission of
// the given fingerprint.
func (s *SubmissionService) UpdateFairness(
	ctx context.Context,
	req domain.FairnessRequest,
) error {

	fingerprint := strings.TrimSpace(req.ClientFingerprint)
	if fingerprint == "" {
		return missing("client_fingerprint")
	}
	if req.FairnessScore == nil {
		return invalid("fairness_score", "Invalid fairness_score (must be 0-10)")
	}
	score := float64(*req.FairnessScore)
	if !finite(score) || score < 0 || score > MaxScore {
		return invalid("fairness_score", "Invalid fairness_score (must be 0-10)")
	}

	latest, err := s.repo.LatestByFingerprint(ctx, fingerprint)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSubmissionNotFound
	}
	if err != nil {
		return fmt.Errorf("find submission: %w", err)
	}

	if err := s.repo.UpdateFairness(ctx, latest.ID, score); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSubmissionNotFound
		}
		return fmt.Errorf("update fairness: %w", err)
	}
	return nil
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

func integralScore(field string, v *domain.Number) (*int, error) {
	if v == nil {
		return nil, nil
	}
	f := float64(*v)
	if !finite(f) || f != math.Trunc(f) || f < 0 || f > MaxScore {
		return nil, invalid(field, "Invalid %s", field)
	}
	n := int(f)
	return &n, nil
}
