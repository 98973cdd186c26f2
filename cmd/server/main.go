package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kenwpond/chatbot-backend/internal/api"
	"github.com/kenwpond/chatbot-backend/internal/assistant"
	"github.com/kenwpond/chatbot-backend/internal/config"
	"github.com/kenwpond/chatbot-backend/internal/llm"
	"github.com/kenwpond/chatbot-backend/internal/retrieval"
	"github.com/kenwpond/chatbot-backend/internal/tutorial"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load .env if present; real env vars win.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Load tutorial data once; immutable for the life of the process.
	steps, err := tutorial.LoadSteps(cfg.StepsPath)
	if err != nil {
		log.Error("failed to load steps", "path", cfg.StepsPath, "error", err)
		os.Exit(1)
	}
	transcript, err := tutorial.LoadTranscript(cfg.TranscriptPath)
	if err != nil {
		log.Warn("failed to load transcript, continuing without it", "path", cfg.TranscriptPath, "error", err)
		transcript = ""
	}
	library := tutorial.NewLibrary(steps, transcript)
	log.Info("tutorial loaded", "steps", len(steps), "transcript_bytes", len(transcript))

	// Initialize the completion client.
	completer, err := llm.NewOpenAIClient(llm.Config{
		Model:     cfg.OpenAIModel,
		APIKey:    cfg.OpenAIAPIKey,
		MaxTokens: cfg.LLMMaxTokens,
		Timeout:   cfg.LLMTimeout,
	})
	if err != nil {
		log.Error("failed to create llm client", "error", err)
		os.Exit(1)
	}
	stats := llm.NewStats(time.Hour)

	opts := retrieval.Options{
		MaxSteps: cfg.MaxSteps,
		Strategy: retrieval.Strategy(cfg.RetrievalStrategy),
		Boosts:   retrieval.DefaultBoosts(),
	}
	svc := assistant.New(library, completer, opts, cfg.SnippetLength, stats, log)

	// Initialize HTTP server.
	srv := api.NewServer(svc, library, stats, cfg.OpenAIModel, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.LLMTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting chatbot backend", "port", cfg.Port, "model", cfg.OpenAIModel)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
