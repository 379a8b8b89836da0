package http

import (
	"net/http"

	"taxburden/domain"
	"taxburden/service"
)

type SubmissionHandler struct {
	service *service.SubmissionService
}

func NewSubmissionHandler(service *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Submit stores a simulator run. Requests with action "update_fairness" are
// fairness updates posted to the same endpoint.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r) {
		return
	}

	var input domain.SubmissionRequest
	if err := decodeJSON(w, r, &input); err != nil {
		log.WithError(err).Debug("decoding submission")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if input.Action == service.ActionUpdateFairness {
		h.updateFairness(w, r, fairnessFromSubmission(input))
		return
	}

	outcome, err := h.service.Submit(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		OK:           true,
		SubmissionID: outcome.SubmissionID,
		Result:       outcome.Result,
	})
}

func (h *SubmissionHandler) UpdateFairness(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r) {
		return
	}

	var input domain.FairnessRequest
	if err := decodeJSON(w, r, &input); err != nil {
		log.WithError(err).Debug("decoding fairness update")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.updateFairness(w, r, input)
}

func (h *SubmissionHandler) updateFairness(w http.ResponseWriter, r *http.Request, input domain.FairnessRequest) {
	if err := h.service.UpdateFairness(r.Context(), input); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{OK: true})
}

func fairnessFromSubmission(in domain.SubmissionRequest) domain.FairnessRequest {
	out := domain.FairnessRequest{FairnessScore: in.FairnessScore}
	if in.ClientFingerprint != nil {
		out.ClientFingerprint = *in.ClientFingerprint
	}
	return out
}
