package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/sossut/adp2/internal/service"
	"github.com/sossut/adp2/internal/transport/rest/handler"
	"github.com/sossut/adp2/internal/transport/rest/middleware"
	"github.com/sossut/adp2/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService           *service.AuthService
	SurveyService         *service.SurveyService
	ScoringService        *service.ScoringService
	HousingCompanyService *service.HousingCompanyService
	QuestionService       *service.QuestionService
	WSHub                 *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	surveyHandler := handler.NewSurveyHandler(c.SurveyService)
	answerHandler := handler.NewAnswerHandler(c.ScoringService)
	resultHandler := handler.NewResultHandler(c.ScoringService)
	companyHandler := handler.NewHousingCompanyHandler(c.HousingCompanyService)
	questionHandler := handler.NewQuestionHandler(c.QuestionService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.SurveyService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes: login and the respondent questionnaire flow.
	// Respondents carry no token, only the unguessable survey key.
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questionnaire/{key}", surveyHandler.GetByKey).Methods("GET", "OPTIONS")
	v1.HandleFunc("/questionnaire/{key}/answers", answerHandler.Submit).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/surveys/{key}/dashboard", wsHandler.OwnerWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Owner routes (require auth)
	ownerRoutes := v1.NewRoute().Subrouter()
	ownerRoutes.Use(authMW.RequireUser)

	ownerRoutes.HandleFunc("/surveys", surveyHandler.Create).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/surveys", surveyHandler.List).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Get).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Delete).Methods("DELETE", "OPTIONS")
	ownerRoutes.HandleFunc("/surveys/{surveyId}/close", surveyHandler.Close).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/surveys/{surveyId}/result", resultHandler.Get).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/housing-companies", companyHandler.Create).Methods("POST", "OPTIONS")
	ownerRoutes.HandleFunc("/housing-companies", companyHandler.List).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/housing-companies/{companyId}", companyHandler.Get).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/housing-companies/{companyId}/surveys", surveyHandler.ListByHousingCompany).Methods("GET", "OPTIONS")
	ownerRoutes.HandleFunc("/questions", questionHandler.ListActive).Methods("GET", "OPTIONS")

	// Admin routes
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/questions", questionHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}/rescore", resultHandler.Rescore).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
