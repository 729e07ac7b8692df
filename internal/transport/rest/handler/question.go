package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sossut/adp2/internal/model"
	"github.com/sossut/adp2/internal/service"
	"github.com/sossut/adp2/internal/transport/rest/middleware"
)

// QuestionHandler handles master question set endpoints
type QuestionHandler struct {
	questionSvc *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionSvc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// Create handles POST /v1/questions
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role := middleware.GetRole(r.Context())

	question, err := h.questionSvc.Create(r.Context(), role, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, question)
}

// ListActive handles GET /v1/questions
func (h *QuestionHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionSvc.GetActive(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}
