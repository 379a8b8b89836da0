package http

import (
	"net/http"

	"taxburden/domain"
	"taxburden/service"
)

type EstimateHandler struct {
	service *service.EstimateService
}

func NewEstimateHandler(service *service.EstimateService) *EstimateHandler {
	return &EstimateHandler{service: service}
}

func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r) {
		return
	}

	var input domain.ProfileRequest
	if err := decodeJSON(w, r, &input); err != nil {
		log.WithError(err).Debug("decoding estimate request")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Estimate(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{OK: true, Result: &result})
}
