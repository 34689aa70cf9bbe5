// Package regression provides concrete backends for the bedtime
// estimator's Predictor interface.
package regression

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"betterrest-backend/internal/model"
)

var (
	// ErrArtifactNotFound is returned when a named artifact does not exist.
	ErrArtifactNotFound = errors.New("regression: artifact not found")
	// ErrInvalidArtifact is returned for artifacts that cannot be evaluated.
	ErrInvalidArtifact = errors.New("regression: invalid artifact")
)

// KindLinear is the only artifact kind evaluated in process.
const KindLinear = "linear"

// LinearModel predicts actual sleep seconds as
// Intercept + Wake*wake + EstimatedSleep*estimatedSleep + Coffee*coffee.
type LinearModel struct {
	Name           string  `yaml:"name"`
	Kind           string  `yaml:"kind"`
	Intercept      float64 `yaml:"intercept"`
	Wake           float64 `yaml:"wake"`
	EstimatedSleep float64 `yaml:"sleep"`
	Coffee         float64 `yaml:"coffee"`
}

// Predict evaluates the model.
func (m *LinearModel) Predict(_ context.Context, wake, estimatedSleep, coffee float64) (float64, error) {
	return m.Intercept + m.Wake*wake + m.EstimatedSleep*estimatedSleep + m.Coffee*coffee, nil
}

// Validate rejects unknown kinds and non-finite coefficients.
func (m *LinearModel) Validate() error {
	if m.Kind != "" && m.Kind != KindLinear {
		return fmt.Errorf("%w: %q has unsupported kind %q", ErrInvalidArtifact, m.Name, m.Kind)
	}
	for _, c := range []float64{m.Intercept, m.Wake, m.EstimatedSleep, m.Coffee} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: %q has a non-finite coefficient", ErrInvalidArtifact, m.Name)
		}
	}
	return nil
}

// Artifact converts the model into its registry row.
func (m *LinearModel) Artifact() *model.Artifact {
	return &model.Artifact{
		Name:       m.Name,
		Kind:       KindLinear,
		Intercept:  m.Intercept,
		WakeCoef:   m.Wake,
		SleepCoef:  m.EstimatedSleep,
		CoffeeCoef: m.Coffee,
	}
}

// FromArtifact builds a validated model from a registry row.
func FromArtifact(a *model.Artifact) (*LinearModel, error) {
	m := &LinearModel{
		Name:           a.Name,
		Kind:           a.Kind,
		Intercept:      a.Intercept,
		Wake:           a.WakeCoef,
		EstimatedSleep: a.SleepCoef,
		Coffee:         a.CoffeeCoef,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadFile reads a YAML artifact file.
func LoadFile(path string) (*LinearModel, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("failed to open artifact %s: %w", path, err)
	}
	defer f.Close()

	var m LinearModel
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidArtifact, path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
