package service

import (
	"math"
	"strings"

	"taxburden/domain"
)

// ValidateProfile checks the invariants the estimator relies on.
func ValidateProfile(p domain.Profile, variant domain.Variant) error {
	shares := []struct {
		field string
		value int
	}{
		{"spend_food", p.SpendFood},
		{"spend_rent", p.SpendRent},
		{"spend_transport", p.SpendTransport},
		{"spend_other", p.SpendOther},
	}
	sum := 0
	for _, s := range shares {
		if s.value < 0 || s.value > SpendTotal {
			return invalid(s.field, "%s must be between 0 and %d", s.field, SpendTotal)
		}
		sum += s.value
	}
	if sum != SpendTotal {
		return invalid("spend", "Spend splits must sum to %d", SpendTotal)
	}

	if !finite(p.WageGrossMonthly) || p.WageGrossMonthly < 0 {
		return invalid("wage_gross_monthly", "wage_gross_monthly must be a non-negative number")
	}
	if !finite(p.OtherIncomeMonthly) || p.OtherIncomeMonthly < 0 {
		return invalid("other_income_monthly", "other_income_monthly must be a non-negative number")
	}
	if p.WageGrossMonthly > MaxMonthlyIncome {
		return invalid("wage_gross_monthly", "wage_gross_monthly exceeds the maximum of %.0f", MaxMonthlyIncome)
	}
	if p.OtherIncomeMonthly > MaxMonthlyIncome {
		return invalid("other_income_monthly", "other_income_monthly exceeds the maximum of %.0f", MaxMonthlyIncome)
	}
	if p.WageGrossMonthly <= 0 && p.OtherIncomeMonthly <= 0 {
		return invalid("income", "wage_gross_monthly or other_income_monthly must be positive")
	}

	if variant != domain.VariantLegacy {
		if !finite(p.SavingsRate) || p.SavingsRate < 0 || p.SavingsRate > MaxSavingsRate {
			return invalid("savings_rate", "savings_rate must be between 0 and %.1f", MaxSavingsRate)
		}
	}
	return nil
}

// ParseVariant maps a sim_version value to a Variant; blank means current.
func ParseVariant(v string) (domain.Variant, error) {
	switch domain.Variant(strings.ToLower(strings.TrimSpace(v))) {
	case "", domain.VariantCurrent:
		return domain.VariantCurrent, nil
	case domain.VariantLegacy:
		return domain.VariantLegacy, nil
	}
	return "", invalid("sim_version", "Invalid sim_version: %s", v)
}

// ProfileFromRequest checks that every estimator field is present and builds
// the Profile. sim_version is only mandatory when requireVersion is set.
func ProfileFromRequest(
	req domain.ProfileRequest,
	requireVersion bool,
) (domain.Profile, domain.Variant, error) {

	if requireVersion && req.SimVersion == nil {
		return domain.Profile{}, "", missing("sim_version")
	}
	required := []struct {
		field string
		ok    bool
	}{
		{"spend_food", req.SpendFood != nil},
		{"spend_rent", req.SpendRent != nil},
		{"spend_transport", req.SpendTransport != nil},
		{"spend_other", req.SpendOther != nil},
		{"has_car", req.HasCar != nil},
		{"smokes", req.Smokes != nil},
		{"drinks_alcohol", req.DrinksAlcohol != nil},
	}
	for _, r := range required {
		if !r.ok {
			return domain.Profile{}, "", missing(r.field)
		}
	}

	version := ""
	if req.SimVersion != nil {
		version = *req.SimVersion
	}
	variant, err := ParseVariant(version)
	if err != nil {
		return domain.Profile{}, "", err
	}

	p := domain.Profile{
		WageGrossMonthly:   req.WageGrossMonthly,
		OtherIncomeMonthly: req.OtherIncomeMonthly,
		SpendFood:          *req.SpendFood,
		SpendRent:          *req.SpendRent,
		SpendTransport:     *req.SpendTransport,
		SpendOther:         *req.SpendOther,
		HasCar:             req.HasCar.Bool(),
		Smokes:             req.Smokes.Bool(),
		DrinksAlcohol:      req.DrinksAlcohol.Bool(),
	}
	if req.SavingsRate != nil {
		p.SavingsRate = *req.SavingsRate
	}
	return p, variant, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
