package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skyrim-alchemy/internal/brewing"
	"github.com/osse101/skyrim-alchemy/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		MaxIngredients: 3,
		Workers:        2,
		TopPotions:     5,
		CacheSize:      16,
	}
}

func TestInitializeServices_EmbeddedDataset(t *testing.T) {
	ctx := context.Background()

	svc, err := InitializeServices(ctx, testConfig(), "run-42")
	require.NoError(t, err)

	ingredients, effects, traits := svc.Store.Len()
	assert.Equal(t, 17, ingredients)
	assert.Equal(t, 32, effects)
	assert.Equal(t, 68, traits)

	index, err := svc.Report.Index(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-42", index.RunID)
	assert.Equal(t, 3, index.Options.MaxIngredients)

	page, err := svc.Report.Ingredient(ctx, "wheat")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(page.Potions), 5)

	GracefulShutdown(ctx, ShutdownComponents{Stats: svc.Stats})
}

func TestInitializeServices_CSVDataset(t *testing.T) {
	cfg := testConfig()
	cfg.DatasetPath = filepath.Join("..", "dataset", "testdata", "csv")

	svc, err := InitializeServices(context.Background(), cfg, "")
	require.NoError(t, err)

	ingredients, _, _ := svc.Store.Len()
	assert.Equal(t, 4, ingredients)
}

func TestInitializeServices_Errors(t *testing.T) {
	t.Run("missing dataset", func(t *testing.T) {
		cfg := testConfig()
		cfg.DatasetPath = filepath.Join(t.TempDir(), "missing.json")

		_, err := InitializeServices(context.Background(), cfg, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedOpenDataset)
	})

	t.Run("invalid engine options", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxIngredients = 7

		_, err := InitializeServices(context.Background(), cfg, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedBuildEngine)
	})
}

func TestEngineOptions(t *testing.T) {
	cfg := testConfig()
	cfg.PureOnly = true

	assert.Equal(t, brewing.Options{MaxIngredients: 3, Workers: 2, PureOnly: true}, EngineOptions(cfg))
}
