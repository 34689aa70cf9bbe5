package regression

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const modelKey = "model"

// CachedPredictor loads its model lazily from a Source and keeps it for
// the reload interval. Failed loads are not cached.
type CachedPredictor struct {
	src    Source
	cache  *cache.Cache
	logger *zap.SugaredLogger
}

// NewCachedPredictor creates a predictor that reloads from src every reload.
func NewCachedPredictor(src Source, reload time.Duration, logger *zap.SugaredLogger) *CachedPredictor {
	return &CachedPredictor{
		src:    src,
		cache:  cache.New(reload, 2*reload),
		logger: logger,
	}
}

// Predict evaluates the current model.
func (p *CachedPredictor) Predict(ctx context.Context, wake, estimatedSleep, coffee float64) (float64, error) {
	m, err := p.Model(ctx)
	if err != nil {
		return 0, err
	}
	return m.Predict(ctx, wake, estimatedSleep, coffee)
}

// Model returns the cached model, loading it if needed.
func (p *CachedPredictor) Model(ctx context.Context) (*LinearModel, error) {
	if v, found := p.cache.Get(modelKey); found {
		return v.(*LinearModel), nil
	}

	m, err := p.src.Load(ctx)
	if err != nil {
		p.logger.Warnf("failed to load regression model: %v", err)
		return nil, err
	}
	p.cache.Set(modelKey, m, cache.DefaultExpiration)
	p.logger.Infof("loaded regression model %q", m.Name)
	return m, nil
}

// Invalidate drops the cached model so the next call reloads it.
func (p *CachedPredictor) Invalidate() {
	p.cache.Delete(modelKey)
}
