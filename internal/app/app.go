// Package app assembles the estimator and its model from configuration.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"betterrest-backend/config"
	"betterrest-backend/internal/db"
	"betterrest-backend/internal/estimator"
	"betterrest-backend/internal/regression"
	"betterrest-backend/internal/store"
)

// App holds the wired components shared by the server and the CLI.
type App struct {
	Estimator *estimator.Estimator
	// Store is nil when no database is configured.
	Store    store.Store
	Defaults estimator.Defaults
	Trigger  estimator.Trigger

	gormDB *gorm.DB
}

// New opens the registry if one is configured, seeds it, and builds the
// estimator selected by cfg.Model.
func New(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	a := &App{}

	if cfg.Database.Enabled() {
		gormDB, err := db.Init(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.gormDB = gormDB
		a.Store = store.NewGormStore(gormDB)

		if cfg.Model.SeedPath != "" {
			m, err := regression.Seed(ctx, a.Store, cfg.Model.SeedPath)
			if err != nil {
				a.Close()
				return nil, fmt.Errorf("failed to seed model registry: %w", err)
			}
			logger.Infof("model registry seeded with %q from %s", m.Name, cfg.Model.SeedPath)
		}
	}

	predictor, err := regression.FromConfig(cfg.Model, a.Store, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Estimator = estimator.New(predictor,
		estimator.WithTimeLayout(cfg.Estimator.TimeLayout),
		estimator.WithLogger(logger))

	a.Defaults, a.Trigger, err = Defaults(cfg.Estimator)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// Defaults parses the configured initial form values.
func Defaults(cfg config.EstimatorConfig) (estimator.Defaults, estimator.Trigger, error) {
	wake, err := estimator.ParseWakeTime(cfg.DefaultWakeTime)
	if err != nil {
		return estimator.Defaults{}, "", fmt.Errorf("estimator.default_wake_time: %w", err)
	}
	trigger, err := estimator.ParseTrigger(cfg.Trigger)
	if err != nil {
		return estimator.Defaults{}, "", err
	}
	d := estimator.Defaults{Wake: wake, SleepHours: cfg.DefaultSleepHours}
	if cfg.DefaultCoffeeCups != nil {
		d.CoffeeCups = *cfg.DefaultCoffeeCups
	}
	if err := estimator.Input(d).Validate(); err != nil {
		return estimator.Defaults{}, "", fmt.Errorf("estimator defaults: %w", err)
	}
	return d, trigger, nil
}

// Close releases the database connection, if any.
func (a *App) Close() {
	if a.gormDB == nil {
		return
	}
	if sqlDB, err := a.gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
