package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sossut/adp2/internal/model"
	"github.com/sossut/adp2/internal/service"
)

// AnswerHandler handles the respondent-facing answer submission
type AnswerHandler struct {
	scoringSvc *service.ScoringService
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(scoringSvc *service.ScoringService) *AnswerHandler {
	return &AnswerHandler{scoringSvc: scoringSvc}
}

// Submit handles POST /v1/questionnaire/{key}/answers. The survey key
// is the only credential a respondent carries. A scoring failure after
// the answers were accepted is reported in the outcome, not as an HTTP
// error.
func (h *AnswerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req model.SubmitAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.scoringSvc.SubmitAnswers(r.Context(), key, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}
