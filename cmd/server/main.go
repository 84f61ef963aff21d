package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/codequiz/backend/internal/api"
	quizsession "github.com/codequiz/backend/internal/domain/quiz_session"
	"github.com/codequiz/backend/internal/infrastructure/config"
	"github.com/codequiz/backend/internal/service"
	"github.com/codequiz/backend/internal/store"

	_ "github.com/codequiz/backend/docs" // generated swagger docs
)

// @title           Code Quiz API
// @version         2.0
// @description     Timed programming quizzes: pick a category, beat the clock, climb the leaderboard.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Seed(context.Background()); err != nil {
		logger.Error("failed to seed question pool", "error", err)
		os.Exit(1)
	}

	quizCfg := quizsession.DefaultConfig()
	quizCfg.QuestionsPerQuiz = cfg.QuestionsPerQuiz
	quizCfg.SecondsPerQuestion = cfg.SecondsPerQuestion
	quizCfg.PointsPerCorrect = cfg.PointsPerCorrect

	quizSvc := service.NewQuizService(db, quizCfg, logger)
	authSvc := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL, logger)
	handler := api.NewHandler(db, quizSvc, authSvc, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
