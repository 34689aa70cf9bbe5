package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"betterrest-backend/config"
	"betterrest-backend/internal/api"
	"betterrest-backend/internal/db"
	"betterrest-backend/internal/estimator"
	"betterrest-backend/internal/logging"
	"betterrest-backend/internal/model"
	"betterrest-backend/internal/regression"
	"betterrest-backend/internal/store"
)

// TestBedtimeLifecycle seeds the registry from the shipped artifact, serves
// estimates through the HTTP API and then swaps the model underneath it.
func TestBedtimeLifecycle(t *testing.T) {
	ctx := context.Background()

	testDB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to the in-memory database")
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()
	require.NoError(t, db.Migrate(testDB))

	appStore := store.NewGormStore(testDB)
	seeded, err := regression.Seed(ctx, appStore, "../config/sleep_calculator.yaml")
	require.NoError(t, err)
	assert.Equal(t, "SleepCalculator", seeded.Name)

	cfg := &config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:?cache=shared"},
		Model:    config.ModelConfig{Source: config.SourceDatabase, Name: "SleepCalculator"},
	}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())
	cfg.Server.CacheTTL = time.Millisecond

	predictor, err := regression.FromConfig(cfg.Model, appStore, logging.Nop())
	require.NoError(t, err)

	est := estimator.New(predictor, estimator.WithTimeLayout(cfg.Estimator.TimeLayout))
	wake, err := estimator.ParseWakeTime(cfg.Estimator.DefaultWakeTime)
	require.NoError(t, err)
	defaults := estimator.Defaults{
		Wake:       wake,
		SleepHours: cfg.Estimator.DefaultSleepHours,
		CoffeeCups: *cfg.Estimator.DefaultCoffeeCups,
	}
	trigger, err := estimator.ParseTrigger(cfg.Estimator.Trigger)
	require.NoError(t, err)

	router := api.NewRouter(api.NewHandler(est, appStore, defaults, trigger, logging.Nop()), cfg.Server, logging.Nop())
	server := httptest.NewServer(router)
	defer server.Close()

	getBedtime := func(query string) (int, api.BedtimeResponse) {
		resp, err := http.Get(server.URL + "/api/bedtime" + query)
		require.NoError(t, err)
		defer resp.Body.Close()
		var body api.BedtimeResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return resp.StatusCode, body
	}

	// 1. Defaults: 06:32 wake, 8 hours, 1 cup.
	status, body := getBedtime("")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "10:48 PM", body.Bedtime)
	assert.Equal(t, -1, body.DayOffset)
	assert.InDelta(t, 27822.24, body.PredictedSleepSeconds, 1e-6)

	// 2. The same query through POST.
	payload, _ := json.Marshal(map[string]any{"wake_time": "06:32", "sleep_hours": 8, "coffee_cups": 1})
	resp, err := http.Post(server.URL+"/api/bedtime", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	var posted api.BedtimeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posted))
	resp.Body.Close()
	assert.Equal(t, body.Bedtime, posted.Bedtime)

	// 3. Publish a new model version; the predictor picks it up once invalidated.
	require.NoError(t, appStore.UpsertArtifact(ctx, &model.Artifact{
		Name: "SleepCalculator", Kind: regression.KindLinear, SleepCoef: 3600,
	}))
	predictor.(*regression.CachedPredictor).Invalidate()
	time.Sleep(5 * time.Millisecond)

	status, body = getBedtime("")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "10:32 PM", body.Bedtime)

	// 4. The registry lists the single updated artifact.
	modelsResp, err := http.Get(server.URL + "/api/models")
	require.NoError(t, err)
	defer modelsResp.Body.Close()
	var models []api.ArtifactResponse
	require.NoError(t, json.NewDecoder(modelsResp.Body).Decode(&models))
	require.Len(t, models, 1)
	assert.Equal(t, 0.0, models[0].Coffee)
}
