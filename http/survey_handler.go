package http

import (
	"net/http"

	"taxburden/domain"
	"taxburden/service"
)

type SurveyHandler struct {
	service *service.SurveyService
}

func NewSurveyHandler(service *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{service: service}
}

func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r) {
		return
	}

	var input domain.SurveyRequest
	if err := decodeJSON(w, r, &input); err != nil {
		log.WithError(err).Debug("decoding survey")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Submit(r.Context(), input); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{OK: true})
}
