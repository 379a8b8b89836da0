package domain

import "time"

// ProfileRequest carries the estimator inputs as posted by the form. Pointer
// fields distinguish a missing value from a zero value.
type ProfileRequest struct {
	SimVersion         *string  `json:"sim_version"`
	WageGrossMonthly   float64  `json:"wage_gross_monthly"`
	OtherIncomeMonthly float64  `json:"other_income_monthly"`
	SavingsRate        *float64 `json:"savings_rate"`

	SpendFood      *int `json:"spend_food"`
	SpendRent      *int `json:"spend_rent"`
	SpendTransport *int `json:"spend_transport"`
	SpendOther     *int `json:"spend_other"`

	HasCar        *Flag `json:"has_car"`
	Smokes        *Flag `json:"smokes"`
	DrinksAlcohol *Flag `json:"drinks_alcohol"`
}

type SubmissionRequest struct {
	ProfileRequest

	Honeypot          string  `json:"dk_hp"`
	Action            string  `json:"action"`
	Occupation        *string `json:"occupation"`
	NetIncomeBand     *string `json:"net_income_band"`
	OwnsRealEstate    *Flag   `json:"owns_real_estate"`
	ConsentAnalytics  *Flag   `json:"consent_analytics"`
	ClientFingerprint *string `json:"client_fingerprint"`
	FairnessScore     *Number `json:"fairness_score"`
}

// Submission is one stored simulator run.
type Submission struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt          time.Time `gorm:"index" json:"created_at"`
	SimVersion         string    `gorm:"not null" json:"sim_version"`
	Occupation         *string   `json:"occupation"`
	NetIncomeBand      *string   `json:"net_income_band"`
	WageGrossMonthly   float64   `json:"wage_gross_monthly"`
	OtherIncomeMonthly float64   `json:"other_income_monthly"`
	AnnualGrossTotal   float64   `json:"annual_gross_total"`
	DirectTaxTotal     int64     `json:"direct_tax_total"`
	SavingsRate        float64   `json:"savings_rate"`

	SpendFood      int `gorm:"not null" json:"spend_food"`
	SpendRent      int `gorm:"not null" json:"spend_rent"`
	SpendTransport int `gorm:"not null" json:"spend_transport"`
	SpendOther     int `gorm:"not null" json:"spend_other"`

	HasCar         bool  `json:"has_car"`
	Smokes         bool  `json:"smokes"`
	DrinksAlcohol  bool  `json:"drinks_alcohol"`
	OwnsRealEstate *bool `json:"owns_real_estate"`

	ResultTaxPctMin int64 `json:"result_tax_pct_min"`
	ResultTaxPctMax int64 `json:"result_tax_pct_max"`
	ResultTLMin     int64 `gorm:"column:result_tl_min" json:"result_tl_min"`
	ResultTLMax     int64 `gorm:"column:result_tl_max" json:"result_tl_max"`

	ConsentAnalytics  bool     `json:"consent_analytics"`
	ClientFingerprint *string  `gorm:"index" json:"client_fingerprint"`
	FairnessScore     *float64 `json:"fairness_score"`
}

func (Submission) TableName() string {
	return "tax_sim_submissions"
}
