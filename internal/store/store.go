package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"betterrest-backend/internal/model"
)

// ErrNotFound is returned when no artifact has the requested name.
var ErrNotFound = errors.New("store: artifact not found")

// Store defines the model registry operations.
type Store interface {
	GetArtifact(ctx context.Context, name string) (*model.Artifact, error)
	ListArtifacts(ctx context.Context) ([]model.Artifact, error)
	UpsertArtifact(ctx context.Context, a *model.Artifact) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// GetArtifact loads one artifact by name.
func (s *gormStore) GetArtifact(ctx context.Context, name string) (*model.Artifact, error) {
	var a model.Artifact
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artifact %q: %w", name, err)
	}
	return &a, nil
}

// ListArtifacts returns every artifact ordered by name.
func (s *gormStore) ListArtifacts(ctx context.Context) ([]model.Artifact, error) {
	var artifacts []model.Artifact
	if err := s.db.WithContext(ctx).Order("name").Find(&artifacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return artifacts, nil
}

// UpsertArtifact inserts the artifact or replaces the coefficients of an
// existing one with the same name.
func (s *gormStore) UpsertArtifact(ctx context.Context, a *model.Artifact) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"kind", "intercept", "wake_coef", "sleep_coef", "coffee_coef", "updated_at"}),
	}).Create(a).Error
	if err != nil {
		return fmt.Errorf("failed to upsert artifact %q: %w", a.Name, err)
	}
	return nil
}
