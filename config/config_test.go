package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxburden/domain"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"ADDR", "DB_URL", "REDIS_ADDR", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_REFILL", "SUBMISSION_WINDOW", "LOG_LEVEL", "TAX_TABLES_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5, cfg.RateLimitCapacity)
	assert.Equal(t, time.Minute, cfg.RateLimitRefill)
	assert.Equal(t, 30*time.Second, cfg.SubmissionWindow)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ADDR", ":9090")
	t.Setenv("RATE_LIMIT_CAPACITY", "20")
	t.Setenv("SUBMISSION_WINDOW", "45s")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 20, cfg.RateLimitCapacity)
	assert.Equal(t, 45*time.Second, cfg.SubmissionWindow)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("RATE_LIMIT_CAPACITY", "many")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("RATE_LIMIT_CAPACITY", "")
	t.Setenv("RATE_LIMIT_REFILL", "-1s")
	_, err = Load()
	assert.Error(t, err)
}

func baseRates() domain.TaxRates {
	return domain.TaxRates{
		Year: 2026,
		WageBrackets: []domain.Bracket{
			{UpTo: 190_000, Rate: 0.15},
			{UpTo: math.Inf(1), Rate: 0.20},
		},
		OtherBrackets: []domain.Bracket{
			{UpTo: 190_000, Rate: 0.15},
			{UpTo: math.Inf(1), Rate: 0.20},
		},
		Payroll: domain.PayrollRates{SocialSecurity: 0.14, Unemployment: 0.01, Stamp: 0.00759},
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTaxRates_OverridesOnlyGivenKeys(t *testing.T) {
	path := writeFile(t, `
year: 2027
wage_brackets:
  - {up_to: 200000, rate: 0.15}
  - {up_to: 500000, rate: 0.2}
  - {up_to: .inf, rate: 0.3}
payroll:
  stamp: 0.008
`)

	rates, err := LoadTaxRates(path, baseRates())
	require.NoError(t, err)

	assert.Equal(t, 2027, rates.Year)
	require.Len(t, rates.WageBrackets, 3)
	assert.Equal(t, 500_000.0, rates.WageBrackets[1].UpTo)
	assert.True(t, math.IsInf(rates.WageBrackets[2].UpTo, 1))
	assert.Len(t, rates.OtherBrackets, 2)
	assert.Equal(t, 0.008, rates.Payroll.Stamp)
	assert.Equal(t, 0.14, rates.Payroll.SocialSecurity)
}

func TestLoadTaxRates_TopBracketUnbounded(t *testing.T) {
	path := writeFile(t, `
other_brackets:
  - {up_to: 100000, rate: 0.1}
  - {up_to: 200000, rate: 0.2}
`)

	rates, err := LoadTaxRates(path, baseRates())
	require.NoError(t, err)
	assert.True(t, math.IsInf(rates.OtherBrackets[1].UpTo, 1))
}

func TestLoadTaxRates_Invalid(t *testing.T) {
	tests := map[string]string{
		"decreasing bounds": "wage_brackets:\n  - {up_to: 300000, rate: 0.1}\n  - {up_to: 200000, rate: 0.2}\n  - {up_to: .inf, rate: 0.3}\n",
		"rate above one":    "wage_brackets:\n  - {up_to: 100, rate: 1.5}\n  - {up_to: .inf, rate: 0.3}\n",
		"empty table":       "wage_brackets: []\n",
		"not yaml":          "wage_brackets: [",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadTaxRates(writeFile(t, content), baseRates())
			assert.Error(t, err)
		})
	}

	_, err := LoadTaxRates(filepath.Join(t.TempDir(), "missing.yaml"), baseRates())
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	assert.NoError(t, SetupLogging("debug"))
	assert.Error(t, SetupLogging("loud"))
	require.NoError(t, SetupLogging("info"))
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
