package domain

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_Coercion(t *testing.T) {
	tests := map[string]float64{
		`7`:      7,
		`7.5`:    7.5,
		`"7"`:    7,
		`" 3 "`:  3,
		`""`:     0,
		`true`:   1,
		`false`:  0,
		`"-1e1"`: -10,
	}

	for raw, want := range tests {
		var n Number
		require.NoError(t, json.Unmarshal([]byte(raw), &n), raw)
		assert.Equal(t, want, float64(n), raw)
	}
}

func TestNumber_NotANumber(t *testing.T) {
	for _, raw := range []string{`"abc"`, `[1]`, `{"v":1}`} {
		var n Number
		require.NoError(t, json.Unmarshal([]byte(raw), &n), raw)
		assert.True(t, math.IsNaN(float64(n)), raw)
	}
}

func TestNumber_MissingAndNull(t *testing.T) {
	var req FairnessRequest
	require.NoError(t, json.Unmarshal([]byte(`{"client_fingerprint":"fp","fairness_score":null}`), &req))
	assert.Nil(t, req.FairnessScore)

	require.NoError(t, json.Unmarshal([]byte(`{"fairness_score":"8"}`), &req))
	require.NotNil(t, req.FairnessScore)
	assert.Equal(t, Number(8), *req.FairnessScore)
}
