package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sossut/adp2/internal/model"
	"github.com/sossut/adp2/internal/service"
	"github.com/sossut/adp2/internal/transport/rest/middleware"
)

// HousingCompanyHandler handles housing company endpoints
type HousingCompanyHandler struct {
	companySvc *service.HousingCompanyService
}

// NewHousingCompanyHandler creates a new housing company handler
func NewHousingCompanyHandler(companySvc *service.HousingCompanyService) *HousingCompanyHandler {
	return &HousingCompanyHandler{companySvc: companySvc}
}

// Create handles POST /v1/housing-companies
func (h *HousingCompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateHousingCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())

	company, err := h.companySvc.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, company)
}

// Get handles GET /v1/housing-companies/{companyId}
func (h *HousingCompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	companyID := mux.Vars(r)["companyId"]
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetRole(r.Context())

	company, err := h.companySvc.GetByID(r.Context(), companyID, userID, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, company)
}

// List handles GET /v1/housing-companies
func (h *HousingCompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	companies, err := h.companySvc.GetByOwner(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"housingCompanies": companies})
}
