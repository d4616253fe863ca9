package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lexicontext/lexicontext-api/internal/config"
	"github.com/lexicontext/lexicontext-api/internal/domain/srs"
	"github.com/lexicontext/lexicontext-api/internal/generation"
	"github.com/lexicontext/lexicontext-api/internal/platform/gemini"
	"github.com/lexicontext/lexicontext-api/internal/platform/openai"
	"github.com/lexicontext/lexicontext-api/internal/platform/postgres"
	"github.com/lexicontext/lexicontext-api/internal/service"
)

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	deckService   service.DeckService
	cardService   service.CardService
	reviewService service.ReviewService
}

// newApplication wires stores, the content provider and the services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	deckStore := postgres.NewPostgresDeckStore(db, logger)
	cardStore := postgres.NewPostgresCardStore(db, logger)
	progressStore := postgres.NewPostgresProgressStore(db, logger)

	provider, err := newContentProvider(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("content provider initialized", "provider", cfg.LLM.Provider)

	orchestrator, err := service.NewContentOrchestrator(provider, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create content orchestrator: %w", err)
	}

	srsService, err := srs.NewDefaultService()
	if err != nil {
		return nil, fmt.Errorf("failed to create SRS service: %w", err)
	}

	if app.deckService, err = service.NewDeckService(deckStore, logger); err != nil {
		return nil, fmt.Errorf("failed to create deck service: %w", err)
	}
	if app.cardService, err = service.NewCardService(db, cardStore, deckStore, orchestrator, logger); err != nil {
		return nil, fmt.Errorf("failed to create card service: %w", err)
	}
	if app.reviewService, err = service.NewReviewService(
		db, cardStore, deckStore, progressStore, srsService, logger,
	); err != nil {
		return nil, fmt.Errorf("failed to create review service: %w", err)
	}

	return app, nil
}

// newContentProvider builds the provider selected by cfg.Provider.
func newContentProvider(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Provider, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		p, err := gemini.NewProvider(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini provider: %w", err)
		}
		return p, nil
	case config.ProviderOpenAI:
		p, err := openai.NewProvider(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize openai provider: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
