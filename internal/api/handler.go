package api

import (
	"go.uber.org/zap"

	"betterrest-backend/internal/estimator"
	"betterrest-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	estimator *estimator.Estimator
	store     store.Store
	defaults  estimator.Defaults
	trigger   estimator.Trigger
	logger    *zap.SugaredLogger
}

// NewHandler creates a new API handler. s may be nil when no model
// registry is configured.
func NewHandler(est *estimator.Estimator, s store.Store, defaults estimator.Defaults, trigger estimator.Trigger, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		estimator: est,
		store:     s,
		defaults:  defaults,
		trigger:   trigger,
		logger:    logger,
	}
}
