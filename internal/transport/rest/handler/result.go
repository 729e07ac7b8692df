package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sossut/adp2/internal/service"
	"github.com/sossut/adp2/internal/transport/rest/middleware"
)

// ResultHandler handles the owner-facing survey result view
type ResultHandler struct {
	scoringSvc *service.ScoringService
}

// NewResultHandler creates a new result handler
func NewResultHandler(scoringSvc *service.ScoringService) *ResultHandler {
	return &ResultHandler{scoringSvc: scoringSvc}
}

// Get handles GET /v1/surveys/{surveyId}/result
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetRole(r.Context())

	result, err := h.scoringSvc.SurveyResult(r.Context(), surveyID, userID, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Rescore handles POST /v1/surveys/{surveyId}/rescore — admin
// maintenance endpoint to recompute a survey's result in place
func (h *ResultHandler) Rescore(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	outcome, err := h.scoringSvc.Rescore(r.Context(), surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}
