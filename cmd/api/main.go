package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/cors"

	"blogsmith/cmd/api/router"
	"blogsmith/cmd/api/services"
	"blogsmith/config"
	"blogsmith/db"
	"blogsmith/internal/logger"
	"blogsmith/repositories"
	"blogsmith/storage"
	"blogsmith/titles"
	"blogsmith/transcribe"
)

// @title           Blogsmith API
// @version         1.0
// @description     Audio transcription with diarization and AI title suggestions for blog posts
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("mongodb init failed: %v", err)
		os.Exit(1)
	}

	media, err := storage.NewMedia(filepath.Join(config.GetBasePath(), cfg.Media.Dir))
	if err != nil {
		logger.Log.Errorf("media storage init failed: %v", err)
		os.Exit(1)
	}

	// Service clients are built once here and reused across requests; an
	// absent credential yields an unconfigured client, reported by /api/health/.
	transcriber, err := transcribe.New(ctx, config.GeminiAPIKey(), cfg.Gemini)
	if err != nil {
		logger.Log.Errorf("transcriber init failed: %v", err)
		os.Exit(1)
	}
	titleClient := titles.New(config.GroqAPIKey(), cfg.Groq)
	logger.InfoWithFields("service clients built", logger.Fields{
		"transcription":    transcriber.Configured(),
		"title_generation": titleClient.Configured(),
	})

	database := db.Database()
	transcriptionSvc, err := services.NewTranscriptionService(
		transcriber,
		repositories.NewTranscriptionRepository(database),
		media,
		"",
	)
	if err != nil {
		logger.Log.Errorf("transcription service init failed: %v", err)
		os.Exit(1)
	}

	r := router.New(router.Services{
		Transcriptions: transcriptionSvc,
		Titles:         services.NewTitleService(titleClient),
		Blogs:          services.NewBlogService(repositories.NewBlogPostRepository(database)),
	})

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8080"
	}

	// The web page calls the API from the browser, so allow cross-origin use.
	handler := cors.AllowAll().Handler(r)

	logger.Log.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
