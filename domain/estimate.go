package domain

// Variant selects which generation of the estimator produces a result.
type Variant string

const (
	// VariantLegacy applies flat consumption rates to gross income and skips
	// direct taxes entirely.
	VariantLegacy Variant = "v1"
	// VariantCurrent computes direct taxes and applies consumption rates to
	// post-tax, post-savings spending.
	VariantCurrent Variant = "v2"
)

// Profile is the household input of a single estimate. Incomes are monthly gross.
type Profile struct {
	WageGrossMonthly   float64
	OtherIncomeMonthly float64
	SavingsRate        float64

	SpendFood      int
	SpendRent      int
	SpendTransport int
	SpendOther     int

	HasCar        bool
	Smokes        bool
	DrinksAlcohol bool
}

// DirectTaxBreakdown keeps every stage of the direct tax computation at full precision.
type DirectTaxBreakdown struct {
	SocialSecurity        float64 `json:"sgk"`
	Unemployment          float64 `json:"unemployment_insurance"`
	Stamp                 float64 `json:"stamp_duty"`
	WageTaxableBase       float64 `json:"wage_taxable_base"`
	WageIncomeTax         float64 `json:"wage_income_tax"`
	OtherIncomeTax        float64 `json:"other_income_tax"`
	Total                 float64 `json:"total"`
	Disposable            float64 `json:"disposable"`
	ConsumptionBase       float64 `json:"consumption_base"`
	IndirectEffectiveRate float64 `json:"indirect_effective_rate"`
}

type EstimateResult struct {
	Variant           Variant             `json:"sim_version"`
	AnnualGrossTotal  float64             `json:"annual_gross_total"`
	DirectTaxTotal    int64               `json:"direct_tax_total"`
	ResultTaxPctMin   int64               `json:"result_tax_pct_min"`
	ResultTaxPctMax   int64               `json:"result_tax_pct_max"`
	ResultTLMin       int64               `json:"result_tl_min"`
	ResultTLMax       int64               `json:"result_tl_max"`
	MonthsForTaxesMin int64               `json:"months_for_taxes_min"`
	MonthsForTaxesMax int64               `json:"months_for_taxes_max"`
	Breakdown         *DirectTaxBreakdown `json:"breakdown,omitempty"`
}
