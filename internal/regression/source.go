package regression

import (
	"context"
	"errors"
	"fmt"

	"betterrest-backend/internal/store"
)

// Source loads a model artifact.
type Source interface {
	Load(ctx context.Context) (*LinearModel, error)
}

// FileSource loads a YAML artifact from disk.
type FileSource struct {
	Path string
}

// Load reads the file.
func (s FileSource) Load(_ context.Context) (*LinearModel, error) {
	return LoadFile(s.Path)
}

// StoreSource loads a named artifact from the model registry.
type StoreSource struct {
	Store store.Store
	Name  string
}

// Load fetches the artifact by name.
func (s StoreSource) Load(ctx context.Context) (*LinearModel, error) {
	a, err := s.Store.GetArtifact(ctx, s.Name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrArtifactNotFound, s.Name)
	}
	if err != nil {
		return nil, err
	}
	return FromArtifact(a)
}

// Seed copies a YAML artifact file into the registry, replacing any
// artifact with the same name.
func Seed(ctx context.Context, s store.Store, path string) (*LinearModel, error) {
	m, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if m.Name == "" {
		return nil, fmt.Errorf("%w: %s has no name", ErrInvalidArtifact, path)
	}
	if err := s.UpsertArtifact(ctx, m.Artifact()); err != nil {
		return nil, err
	}
	return m, nil
}
