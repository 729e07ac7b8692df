package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sossut/adp2/internal/cache"
	"github.com/sossut/adp2/internal/config"
	"github.com/sossut/adp2/internal/repository"
	"github.com/sossut/adp2/internal/scoring"
	"github.com/sossut/adp2/internal/service"
	"github.com/sossut/adp2/internal/transport/rest"
	"github.com/sossut/adp2/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	surveyRepo := repository.NewSurveyRepo(db)
	answerRepo := repository.NewAnswerRepo(db)
	resultRepo := repository.NewResultRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)
	companyRepo := repository.NewHousingCompanyRepo(db)
	questionRepo := repository.NewQuestionRepo(db)

	// Initialize caches
	surveyCache := cache.NewSurveyCache(rdb)
	catalogCache := cache.NewCatalogCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg)
	surveySvc := service.NewSurveyService(surveyRepo, answerRepo, resultRepo, companyRepo, questionRepo, surveyCache)
	companySvc := service.NewHousingCompanyService(companyRepo)
	questionSvc := service.NewQuestionService(questionRepo)

	gate := scoring.NewGate(cfg.MinResponses)
	scoringSvc := service.NewScoringService(surveyRepo, answerRepo, resultRepo, catalogRepo, surveyCache, catalogCache, gate)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	scoringSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:           authSvc,
		SurveyService:         surveySvc,
		ScoringService:        scoringSvc,
		HousingCompanyService: companySvc,
		QuestionService:       questionSvc,
		WSHub:                 wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Printf("Scoring floor: %d responses", gate.Min)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/questionnaire/{key}")
		log.Println("  POST /v1/questionnaire/{key}/answers")
		log.Println("  POST/GET /v1/surveys")
		log.Println("  GET  /v1/surveys/{surveyId}/result")
		log.Println("  POST/GET /v1/housing-companies")
		log.Println("  WS   /v1/ws/surveys/{key}/dashboard")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
