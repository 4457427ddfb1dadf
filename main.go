// api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"focusmate/api/analytics"
	"focusmate/api/config"
	"focusmate/api/database"
	"focusmate/api/handlers"
	"focusmate/api/middleware"
	"focusmate/api/store"
)

func main() {
	// Load .env file at the very start
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize the activity data file (durable store) ---
	db, err := database.NewJSONFileDB(cfg.DataFile)
	if err != nil {
		log.Fatalf("Failed to initialize activity data file: %v", err)
	}

	// --- Initialize Store and Analytics Engine ---
	activityStore := store.NewActivityStore(db)
	engine := analytics.NewEngine(activityStore)

	// --- Initialize Handlers ---
	activityHandlers := handlers.NewActivityHandlers(activityStore)
	analysisHandlers := handlers.NewAnalysisHandlers(engine)

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(cfg.FrontendOrigin))

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.HealthCheck)
	r.POST("/activity", activityHandlers.TrackActivity)
	r.GET("/analysis/today", analysisHandlers.GetTodayAnalysis)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Printf("FocusMate API server starting on http://%s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("FocusMate API server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
