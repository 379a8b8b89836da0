package service

import (
	"math"

	"github.com/samber/lo"

	"taxburden/domain"
)

// Estimator turns a household profile into a total tax burden range. It holds
// no mutable state and is safe for concurrent use.
type Estimator struct {
	rates domain.TaxRates
}

// NewEstimator creates an Estimator over the given tax tables.
func NewEstimator(rates domain.TaxRates) *Estimator {
	return &Estimator{rates: rates}
}

// Rates returns the tables the estimator was built with.
func (e *Estimator) Rates() domain.TaxRates {
	return e.rates
}

// Estimate computes the burden range for p. An empty variant means
// domain.VariantCurrent. ErrNoIncome is returned when the annual gross income
// is not positive.
func (e *Estimator) Estimate(
	p domain.Profile,
	variant domain.Variant,
) (domain.EstimateResult, error) {

	if variant == "" {
		variant = domain.VariantCurrent
	}
	if variant != domain.VariantCurrent && variant != domain.VariantLegacy {
		return domain.EstimateResult{}, ErrUnknownVariant
	}

	wage := annualize(p.WageGrossMonthly)
	other := annualize(p.OtherIncomeMonthly)
	gross := wage + other
	if gross <= 0 {
		return domain.EstimateResult{}, ErrNoIncome
	}

	if variant == domain.VariantLegacy {
		return e.estimateLegacy(p, gross), nil
	}
	return e.estimateCurrent(p, wage, other), nil
}

// DirectTax computes payroll deductions and income tax on annual gross wage
// and annual gross other income. Other income is stacked on top of the
// taxable wage base in the non-wage table.
func (e *Estimator) DirectTax(wage, other float64) domain.DirectTaxBreakdown {
	wage = math.Max(0, wage)
	other = math.Max(0, other)
	pr := e.rates.Payroll

	sgk := wage * pr.SocialSecurity
	ui := wage * pr.Unemployment
	stamp := wage * pr.Stamp

	base := math.Max(0, wage-sgk-ui)
	taxWage := ProgressiveBracketTax(base, e.rates.WageBrackets)

	stacked := ProgressiveBracketTax(base+other, e.rates.OtherBrackets)
	below := ProgressiveBracketTax(base, e.rates.OtherBrackets)
	taxOther := math.Max(0, stacked-below)

	return domain.DirectTaxBreakdown{
		SocialSecurity:  sgk,
		Unemployment:    ui,
		Stamp:           stamp,
		WageTaxableBase: base,
		WageIncomeTax:   taxWage,
		OtherIncomeTax:  taxOther,
		Total:           sgk + ui + stamp + taxWage + taxOther,
	}
}

// IndirectRate is the clamped effective consumption-tax rate for p.
func (e *Estimator) IndirectRate(p domain.Profile) float64 {
	r := e.rates.Indirect

	transport := r.Transport
	if p.HasCar {
		transport = r.TransportCar
	}
	weighted := share(p.SpendFood)*r.Food +
		share(p.SpendRent)*r.Rent +
		share(p.SpendTransport)*transport +
		share(p.SpendOther)*r.Other

	surcharge := 0.0
	if p.Smokes {
		surcharge += r.Smoking
	}
	if p.DrinksAlcohol {
		surcharge += r.Alcohol
	}

	return lo.Clamp(weighted+surcharge, 0, r.MaxEffective)
}

func (e *Estimator) estimateCurrent(p domain.Profile, wage, other float64) domain.EstimateResult {
	gross := wage + other
	direct := e.DirectTax(wage, other)

	// el consumo es lo que queda después de impuestos directos y ahorro
	disposable := math.Max(0, gross-direct.Total)
	savings := 0.0
	if !math.IsNaN(p.SavingsRate) {
		savings = lo.Clamp(p.SavingsRate, 0, MaxSavingsRate)
	}
	consumption := disposable * (1 - savings)

	rate := e.IndirectRate(p)
	indirect := consumption * rate

	direct.Disposable = disposable
	direct.ConsumptionBase = consumption
	direct.IndirectEffectiveRate = rate

	totalMin := direct.Total + indirect*e.rates.Indirect.BandLowFactor
	totalMax := direct.Total + indirect*e.rates.Indirect.BandUpFactor

	result := e.assemble(domain.VariantCurrent, gross, totalMin, totalMax)
	result.DirectTaxTotal = roundInt(direct.Total)
	result.Breakdown = &direct
	return result
}

// estimateLegacy reproduces v1 outputs: flat category rates on gross income,
// band applied in percentage-point space (not ratio space), no direct taxes.
func (e *Estimator) estimateLegacy(p domain.Profile, gross float64) domain.EstimateResult {
	r := e.rates.Legacy

	base := share(p.SpendFood)*r.Food +
		share(p.SpendRent)*r.Rent +
		share(p.SpendTransport)*r.Transport +
		share(p.SpendOther)*r.Other
	if p.HasCar {
		base += r.CarSurcharge
	}
	if p.Smokes {
		base += r.Smoking
	}
	if p.DrinksAlcohol {
		base += r.Alcohol
	}

	low := lo.Clamp(base-r.BandBelow, r.MinShare, r.MaxShare)
	high := lo.Clamp(base+r.BandAbove, r.MinShare, r.MaxShare)

	return e.assemble(domain.VariantLegacy, gross, gross*low, gross*high)
}

// assemble rounds the unrounded totals. Percentages come from the unrounded
// amounts, are clamped, then rounded; months derive from the rounded percentages.
func (e *Estimator) assemble(
	variant domain.Variant,
	gross, totalMin, totalMax float64,
) domain.EstimateResult {
	pctMin := lo.Clamp(totalMin/gross*100, 0, e.rates.MaxTotalPct)
	pctMax := lo.Clamp(totalMax/gross*100, 0, e.rates.MaxTotalPct)

	result := domain.EstimateResult{
		Variant:          variant,
		AnnualGrossTotal: gross,
		ResultTaxPctMin:  roundInt(pctMin),
		ResultTaxPctMax:  roundInt(pctMax),
		ResultTLMin:      roundInt(totalMin),
		ResultTLMax:      roundInt(totalMax),
	}
	result.MonthsForTaxesMin = roundInt(float64(result.ResultTaxPctMin) / 100 * MonthsPerYear)
	result.MonthsForTaxesMax = roundInt(float64(result.ResultTaxPctMax) / 100 * MonthsPerYear)
	return result
}

func annualize(monthly float64) float64 {
	if math.IsNaN(monthly) || monthly <= 0 {
		return 0
	}
	return monthly * MonthsPerYear
}

// share converts a spend percentage to a fraction, clamped to [0, 1].
func share(pct int) float64 {
	return float64(lo.Clamp(pct, 0, SpendTotal)) / SpendTotal
}

// roundInt rounds half away from zero and saturates at the int64 range.
func roundInt(v float64) int64 {
	r := math.Round(v)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt64:
		return math.MaxInt64
	case r <= math.MinInt64:
		return math.MinInt64
	}
	return int64(r)
}
