package http

import (
	"bytes"
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"taxburden/domain"
	"taxburden/service"
)

const maxBodyBytes = 64 << 10

var log = logrus.WithField("module", "http")

type envelope struct {
	OK           bool                   `json:"ok"`
	Error        string                 `json:"error,omitempty"`
	SubmissionID string                 `json:"submission_id,omitempty"`
	Result       *domain.EstimateResult `json:"result,omitempty"`
}

// decodeJSON reads a JSON body into dst. An empty body decodes as {}.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return err
	}
	if len(bytes.TrimSpace(buf.Bytes())) == 0 {
		return nil
	}
	return json.Unmarshal(buf.Bytes(), dst)
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.WithError(err).Error("encoding response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Warn("writing response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{OK: false, Error: message})
}

// writeServiceError maps service errors to status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, service.ErrNoIncome):
		writeError(w, http.StatusBadRequest, "Income must be positive")
	case errors.Is(err, service.ErrUnknownVariant):
		writeError(w, http.StatusBadRequest, "Invalid sim_version")
	case errors.Is(err, service.ErrTooManySubmissions):
		writeError(w, http.StatusTooManyRequests, "Too many submissions. Please wait ~30 seconds and try again.")
	case errors.Is(err, service.ErrSubmissionNotFound):
		writeError(w, http.StatusNotFound, "No submission found for this fingerprint")
	default:
		log.WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodPost {
		return false
	}
	w.Header().Set("Allow", http.MethodPost)
	writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	return true
}
