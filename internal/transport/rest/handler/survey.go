package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sossut/adp2/internal/model"
	"github.com/sossut/adp2/internal/service"
	"github.com/sossut/adp2/internal/transport/rest/middleware"
)

// SurveyHandler handles survey endpoints
type SurveyHandler struct {
	surveySvc *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc}
}

// Create handles POST /v1/surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())
	role := middleware.GetRole(r.Context())

	survey, err := h.surveySvc.Create(r.Context(), userID, role, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, survey)
}

// Get handles GET /v1/surveys/{surveyId}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetRole(r.Context())

	survey, err := h.surveySvc.GetByID(r.Context(), surveyID, userID, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, survey)
}

// List handles GET /v1/surveys
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	surveys, err := h.surveySvc.GetByOwner(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"surveys": surveys})
}

// ListByHousingCompany handles GET /v1/housing-companies/{companyId}/surveys
func (h *SurveyHandler) ListByHousingCompany(w http.ResponseWriter, r *http.Request) {
	companyID := mux.Vars(r)["companyId"]
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetRole(r.Context())

	surveys, err := h.surveySvc.GetByHousingCompany(r.Context(), companyID, userID, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"surveys": surveys})
}

// GetByKey handles GET /v1/questionnaire/{key} — the respondent-facing
// questionnaire fetch, no authentication
func (h *SurveyHandler) GetByKey(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	survey, err := h.surveySvc.GetByKey(r.Context(), key)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Respondents only need the questionnaire itself, not owner data
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"key":       survey.Key,
		"status":    survey.Status,
		"questions": survey.QuestionsUsed,
		"sections":  survey.SectionsUsed,
	})
}

// Close handles POST /v1/surveys/{surveyId}/close
func (h *SurveyHandler) Close(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetRole(r.Context())

	if err := h.surveySvc.Close(r.Context(), surveyID, userID, role); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "survey closed", "id": surveyID})
}

// Delete handles DELETE /v1/surveys/{surveyId}
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetRole(r.Context())

	if err := h.surveySvc.Delete(r.Context(), surveyID, userID, role); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "survey deleted", "id": surveyID})
}
