package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxburden/repository"
	"taxburden/service"
)

const scenarioABody = `{
	"sim_version": "v2",
	"occupation": "private",
	"wage_gross_monthly": 20000,
	"other_income_monthly": 0,
	"savings_rate": 0.15,
	"spend_food": 25,
	"spend_rent": 35,
	"spend_transport": 15,
	"spend_other": 25,
	"has_car": false,
	"smokes": 0,
	"drinks_alcohol": "",
	"owns_real_estate": null,
	"consent_analytics": true,
	"client_fingerprint": "fp-test",
	"dk_hp": ""
}`

type testServer struct {
	repo        *repository.SubmissionRepositoryMemory
	estimate    *EstimateHandler
	submissions *SubmissionHandler
	survey      *SurveyHandler
}

func newTestServer() *testServer {
	repo := repository.NewSubmissionRepositoryMemory()
	estimates := service.NewEstimateService(service.NewEstimator(service.DefaultTaxRates()))
	submissions := service.NewSubmissionService(
		estimates,
		repo,
		repository.NewSubmissionThrottle(repo),
		30*time.Second,
	)
	return &testServer{
		repo:        repo,
		estimate:    NewEstimateHandler(estimates),
		submissions: NewSubmissionHandler(submissions),
		survey:      NewSurveyHandler(service.NewSurveyService(repo)),
	}
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func TestEstimateHandler_OK(t *testing.T) {
	srv := newTestServer()

	w := post(srv.estimate.Estimate, scenarioABody)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	env := decodeEnvelope(t, w)
	assert.True(t, env.OK)
	require.NotNil(t, env.Result)
	assert.Equal(t, int64(69_122), env.Result.DirectTaxTotal)
	assert.Equal(t, int64(32), env.Result.ResultTaxPctMin)
	assert.Equal(t, int64(33), env.Result.ResultTaxPctMax)
	assert.Empty(t, srv.repo.Submissions())
}

func TestEstimateHandler_NoIncome(t *testing.T) {
	srv := newTestServer()

	w := post(srv.estimate.Estimate, `{"spend_food":25,"spend_rent":25,"spend_transport":25,"spend_other":25,"has_car":false,"smokes":false,"drinks_alcohol":false}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeEnvelope(t, w).OK)
}

func TestEstimateHandler_MethodNotAllowed(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/estimate", nil)
	w := httptest.NewRecorder()
	srv.estimate.Estimate(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}

func TestEstimateHandler_BadRequest(t *testing.T) {
	srv := newTestServer()

	w := post(srv.estimate.Estimate, `{invalid-json}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitHandler_OK(t *testing.T) {
	srv := newTestServer()

	w := post(srv.submissions.Submit, scenarioABody)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	env := decodeEnvelope(t, w)
	assert.True(t, env.OK)
	assert.NotEmpty(t, env.SubmissionID)
	require.NotNil(t, env.Result)
	assert.Equal(t, int64(77_619), env.Result.ResultTLMin)

	stored := srv.repo.Submissions()
	require.Len(t, stored, 1)
	assert.Equal(t, env.SubmissionID, stored[0].ID)
	assert.False(t, stored[0].Smokes)
	assert.False(t, stored[0].DrinksAlcohol)
	assert.Nil(t, stored[0].OwnsRealEstate)
}

func TestSubmitHandler_Throttled(t *testing.T) {
	srv := newTestServer()

	require.Equal(t, http.StatusOK, post(srv.submissions.Submit, scenarioABody).Code)
	w := post(srv.submissions.Submit, scenarioABody)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Too many submissions. Please wait ~30 seconds and try again.", decodeEnvelope(t, w).Error)
	assert.Len(t, srv.repo.Submissions(), 1)
}

func TestSubmitHandler_Honeypot(t *testing.T) {
	srv := newTestServer()

	w := post(srv.submissions.Submit, `{"dk_hp": "bot"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Empty(t, srv.repo.Submissions())
}

func TestSubmitHandler_Validation(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"empty body", ``, "Missing: sim_version"},
		{"missing spend", `{"sim_version":"v2","spend_food":50}`, "Missing: spend_rent"},
		{
			"bad split",
			`{"sim_version":"v2","wage_gross_monthly":1000,"spend_food":50,"spend_rent":50,"spend_transport":10,"spend_other":0,"has_car":1,"smokes":0,"drinks_alcohol":0,"consent_analytics":true}`,
			"Spend splits must sum to 100",
		},
		{
			"missing consent",
			`{"sim_version":"v2","wage_gross_monthly":1000,"spend_food":50,"spend_rent":50,"spend_transport":0,"spend_other":0,"has_car":1,"smokes":0,"drinks_alcohol":0}`,
			"Missing: consent_analytics",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(srv.submissions.Submit, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.msg, decodeEnvelope(t, w).Error)
		})
	}
	assert.Empty(t, srv.repo.Submissions())
}

func TestSubmitHandler_FairnessAction(t *testing.T) {
	srv := newTestServer()
	require.Equal(t, http.StatusOK, post(srv.submissions.Submit, scenarioABody).Code)

	w := post(srv.submissions.Submit, `{"action":"update_fairness","client_fingerprint":"fp-test","fairness_score":8}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	stored := srv.repo.Submissions()
	require.NotNil(t, stored[0].FairnessScore)
	assert.Equal(t, 8.0, *stored[0].FairnessScore)
}

func TestUpdateFairnessHandler(t *testing.T) {
	srv := newTestServer()

	w := post(srv.submissions.UpdateFairness, `{"client_fingerprint":"unknown","fairness_score":3}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = post(srv.submissions.UpdateFairness, `{"client_fingerprint":"fp","fairness_score":12}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid fairness_score (must be 0-10)", decodeEnvelope(t, w).Error)

	w = post(srv.submissions.UpdateFairness, `{"fairness_score":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing: client_fingerprint", decodeEnvelope(t, w).Error)
}

func TestSurveyHandler(t *testing.T) {
	srv := newTestServer()

	w := post(srv.survey.Submit, `{"submission_id":"abc","age_band":"25-34","effectiveness_score":3,"trust_central_gov_score":null,"policy_priority":"health"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, srv.repo.Surveys(), 1)
	assert.Nil(t, srv.repo.Surveys()[0].TrustCentralGovScore)

	w = post(srv.survey.Submit, `{"age_band":"25-34"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing submission_id", decodeEnvelope(t, w).Error)

	w = post(srv.survey.Submit, `{"submission_id":"abc","effectiveness_score":11}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid effectiveness_score", decodeEnvelope(t, w).Error)
}

func TestUpdateFairnessHandler_NumericString(t *testing.T) {
	srv := newTestServer()
	require.Equal(t, http.StatusOK, post(srv.submissions.Submit, scenarioABody).Code)

	w := post(srv.submissions.UpdateFairness, `{"client_fingerprint":"fp-test","fairness_score":"7"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, srv.repo.Submissions()[0].FairnessScore)
	assert.Equal(t, 7.0, *srv.repo.Submissions()[0].FairnessScore)

	w = post(srv.submissions.UpdateFairness, `{"client_fingerprint":"fp-test","fairness_score":"seven"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid fairness_score (must be 0-10)", decodeEnvelope(t, w).Error)
}

func TestSurveyHandler_NumericStringScore(t *testing.T) {
	srv := newTestServer()

	w := post(srv.survey.Submit, `{"submission_id":"abc","effectiveness_score":"4"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, srv.repo.Surveys()[0].EffectivenessScore)
	assert.Equal(t, 4, *srv.repo.Surveys()[0].EffectivenessScore)
}

func TestEstimateHandler_IncomeAboveMaximum(t *testing.T) {
	srv := newTestServer()

	w := post(srv.estimate.Estimate, `{"wage_gross_monthly":1e300,"savings_rate":0.1,"spend_food":25,"spend_rent":25,"spend_transport":25,"spend_other":25,"has_car":0,"smokes":0,"drinks_alcohol":0}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "wage_gross_monthly exceeds the maximum of 1000000000", decodeEnvelope(t, w).Error)
}
