package regression

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"betterrest-backend/config"
	"betterrest-backend/internal/estimator"
	"betterrest-backend/internal/store"
)

// FromConfig builds the predictor selected by cfg.Source. s may be nil
// unless the source is the database.
func FromConfig(cfg config.ModelConfig, s store.Store, logger *zap.SugaredLogger) (estimator.Predictor, error) {
	switch cfg.Source {
	case config.SourceFile:
		return NewCachedPredictor(FileSource{Path: cfg.Path}, cfg.Reload, logger), nil
	case config.SourceDatabase:
		if s == nil {
			return nil, errors.New("model source is database but no registry is configured")
		}
		return NewCachedPredictor(StoreSource{Store: s, Name: cfg.Name}, cfg.Reload, logger), nil
	case config.SourceRemote:
		return NewRemoteModel(cfg.Remote, logger), nil
	default:
		return nil, fmt.Errorf("unknown model source %q", cfg.Source)
	}
}
