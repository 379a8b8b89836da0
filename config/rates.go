package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"taxburden/domain"
)

// LoadTaxRates reads a YAML tax table file over base. Keys missing from the
// file keep base's values; a bracket list in the file replaces the whole list.
func LoadTaxRates(path string, base domain.TaxRates) (domain.TaxRates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.TaxRates{}, fmt.Errorf("read tax tables: %w", err)
	}

	rates := base
	// slices are replaced, never merged element-wise
	rates.WageBrackets = nil
	rates.OtherBrackets = nil
	if err := yaml.Unmarshal(data, &rates); err != nil {
		return domain.TaxRates{}, fmt.Errorf("parse tax tables %s: %w", path, err)
	}
	if rates.WageBrackets == nil {
		rates.WageBrackets = append([]domain.Bracket(nil), base.WageBrackets...)
	}
	if rates.OtherBrackets == nil {
		rates.OtherBrackets = append([]domain.Bracket(nil), base.OtherBrackets...)
	}

	if err := normalizeBrackets("wage_brackets", rates.WageBrackets); err != nil {
		return domain.TaxRates{}, err
	}
	if err := normalizeBrackets("other_brackets", rates.OtherBrackets); err != nil {
		return domain.TaxRates{}, err
	}
	return rates, nil
}

// normalizeBrackets checks ordering and rates and makes the top bracket unbounded.
func normalizeBrackets(name string, table []domain.Bracket) error {
	if len(table) == 0 {
		return fmt.Errorf("%s: at least one bracket is required", name)
	}
	last := 0.0
	for i, b := range table {
		if b.Rate < 0 || b.Rate > 1 || math.IsNaN(b.Rate) {
			return fmt.Errorf("%s[%d]: rate %v outside [0, 1]", name, i, b.Rate)
		}
		if i < len(table)-1 && (b.UpTo <= last || math.IsNaN(b.UpTo)) {
			return fmt.Errorf("%s[%d]: up_to %v must be greater than %v", name, i, b.UpTo, last)
		}
		last = b.UpTo
	}
	table[len(table)-1].UpTo = math.Inf(1)
	return nil
}
