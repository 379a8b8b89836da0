package domain

// Bracket is one tier of a progressive table: income up to UpTo is taxed at Rate.
type Bracket struct {
	UpTo float64 `yaml:"up_to"`
	Rate float64 `yaml:"rate"`
}

type PayrollRates struct {
	SocialSecurity float64 `yaml:"social_security"`
	Unemployment   float64 `yaml:"unemployment"`
	Stamp          float64 `yaml:"stamp"`
}

// CategoryRates are the consumption-tax proxy rates per spending category.
type CategoryRates struct {
	Food          float64 `yaml:"food"`
	Rent          float64 `yaml:"rent"`
	Transport     float64 `yaml:"transport"`
	TransportCar  float64 `yaml:"transport_car"`
	Other         float64 `yaml:"other"`
	Smoking       float64 `yaml:"smoking"`
	Alcohol       float64 `yaml:"alcohol"`
	MaxEffective  float64 `yaml:"max_effective"`
	BandLowFactor float64 `yaml:"band_low_factor"`
	BandUpFactor  float64 `yaml:"band_up_factor"`
}

// LegacyRates drive the v1 estimate, whose band is expressed in percentage-point
// space (not ratio space).
type LegacyRates struct {
	Food         float64 `yaml:"food"`
	Rent         float64 `yaml:"rent"`
	Transport    float64 `yaml:"transport"`
	Other        float64 `yaml:"other"`
	CarSurcharge float64 `yaml:"car_surcharge"`
	Smoking      float64 `yaml:"smoking"`
	Alcohol      float64 `yaml:"alcohol"`
	BandBelow    float64 `yaml:"band_below"`
	BandAbove    float64 `yaml:"band_above"`
	MinShare     float64 `yaml:"min_share"`
	MaxShare     float64 `yaml:"max_share"`
}

// TaxRates is the complete parameter set of the estimator for one tax year.
type TaxRates struct {
	Year          int           `yaml:"year"`
	WageBrackets  []Bracket     `yaml:"wage_brackets"`
	OtherBrackets []Bracket     `yaml:"other_brackets"`
	Payroll       PayrollRates  `yaml:"payroll"`
	Indirect      CategoryRates `yaml:"indirect"`
	Legacy        LegacyRates   `yaml:"legacy"`
	MaxTotalPct   float64       `yaml:"max_total_pct"`
}
