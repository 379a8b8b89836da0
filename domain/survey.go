package domain

import "time"

type SurveyRequest struct {
	SubmissionID         string  `json:"submission_id"`
	AgeBand              *string `json:"age_band"`
	Gender               *string `json:"gender"`
	City                 *string `json:"city"`
	TenantStatus         *string `json:"tenant_status"`
	EffectivenessScore   *Number `json:"effectiveness_score"`
	TrustCentralGovScore *Number `json:"trust_central_gov_score"`
	PolicyPriority       *string `json:"policy_priority"`
}

// SurveyResponse is the optional follow-up questionnaire attached to a submission.
type SurveyResponse struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	CreatedAt            time.Time `json:"created_at"`
	SubmissionID         string    `gorm:"index;not null" json:"submission_id"`
	AgeBand              *string   `json:"age_band"`
	Gender               *string   `json:"gender"`
	City                 *string   `json:"city"`
	TenantStatus         *string   `json:"tenant_status"`
	EffectivenessScore   *int      `json:"effectiveness_score"`
	TrustCentralGovScore *int      `json:"trust_central_gov_score"`
	PolicyPriority       *string   `json:"policy_priority"`
}

func (SurveyResponse) TableName() string {
	return "tax_sim_optional_survey"
}

type FairnessRequest struct {
	ClientFingerprint string  `json:"client_fingerprint"`
	FairnessScore     *Number `json:"fairness_score"`
}
