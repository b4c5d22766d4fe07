package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/skyrim-alchemy/internal/brewing"
	"github.com/osse101/skyrim-alchemy/internal/config"
	"github.com/osse101/skyrim-alchemy/internal/dataset"
	"github.com/osse101/skyrim-alchemy/internal/logger"
	"github.com/osse101/skyrim-alchemy/internal/ranking"
	"github.com/osse101/skyrim-alchemy/internal/report"
	"github.com/osse101/skyrim-alchemy/internal/stats"
)

// Services holds every engine component used by the binaries.
// The dataset is loaded once; everything built on it is read-only.
type Services struct {
	Store         *dataset.Store
	Accessibility *ranking.Accessibility
	Engine        brewing.Engine
	Ranking       ranking.Service
	Stats         stats.Service
	Report        report.Service
}

// InitializeServices loads the configured dataset and wires the engines on top of it.
// runID is stamped into generated reports and may be empty.
func InitializeServices(ctx context.Context, cfg *config.Config, runID string) (*Services, error) {
	store, err := dataset.Open(ctx, dataset.NewLoader(), cfg.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDataset, err)
	}

	access, err := ranking.NewAccessibility(ctx, store, ranking.DefaultWeights())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedScoreDataset, err)
	}

	engine, err := brewing.NewEngine(ctx, store, access, EngineOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildEngine, err)
	}

	rank := ranking.NewService(access, engine)
	st := stats.NewService(store, access, engine, stats.CacheConfig{Size: cfg.CacheSize, TTL: cfg.CacheTTL})

	svc := &Services{
		Store:         store,
		Accessibility: access,
		Engine:        engine,
		Ranking:       rank,
		Stats:         st,
		Report: report.NewService(store, rank, st, engine, report.Config{
			TopPotions: cfg.TopPotions,
			RunID:      runID,
		}),
	}

	ingredients, effects, traits := store.Len()
	logger.FromContext(ctx).Info(LogMsgServicesInitialized,
		logger.AttrKeyDataset, store.Info().Version,
		"ingredients", ingredients,
		"effects", effects,
		"traits", traits)
	return svc, nil
}

// EngineOptions maps configuration onto brewing options
func EngineOptions(cfg *config.Config) brewing.Options {
	return brewing.Options{
		MaxIngredients:     cfg.MaxIngredients,
		Workers:            cfg.Workers,
		PureOnly:           cfg.PureOnly,
		RequireImprovement: cfg.RequireImprovement,
	}
}
