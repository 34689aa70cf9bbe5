package regression

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betterrest-backend/internal/model"
)

func writeArtifact(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLinearModel_Predict(t *testing.T) {
	m := &LinearModel{Intercept: -1800, Wake: 0.01, EstimatedSleep: 3600, Coffee: 600}

	got, err := m.Predict(context.Background(), 23520, 8, 2)
	require.NoError(t, err)
	assert.InDelta(t, -1800+235.2+28800+1200, got, 1e-9)
}

func TestLinearModel_Validate(t *testing.T) {
	assert.NoError(t, (&LinearModel{Name: "a"}).Validate())
	assert.NoError(t, (&LinearModel{Name: "a", Kind: KindLinear}).Validate())
	assert.ErrorIs(t, (&LinearModel{Name: "a", Kind: "boosted_tree"}).Validate(), ErrInvalidArtifact)
	assert.ErrorIs(t, (&LinearModel{Name: "a", Coffee: math.NaN()}).Validate(), ErrInvalidArtifact)
	assert.ErrorIs(t, (&LinearModel{Name: "a", Wake: math.Inf(-1)}).Validate(), ErrInvalidArtifact)
}

func TestLoadFile(t *testing.T) {
	t.Run("shipped artifact", func(t *testing.T) {
		m, err := LoadFile("../../config/sleep_calculator.yaml")
		require.NoError(t, err)
		assert.Equal(t, "SleepCalculator", m.Name)
		assert.Equal(t, KindLinear, m.Kind)
		assert.Equal(t, 3600.0, m.EstimatedSleep)
	})

	t.Run("valid file", func(t *testing.T) {
		m, err := LoadFile(writeArtifact(t, "name: Test\nkind: linear\nintercept: 10\nwake: 0.5\nsleep: 3600\ncoffee: 300\n"))
		require.NoError(t, err)
		assert.Equal(t, &LinearModel{Name: "Test", Kind: "linear", Intercept: 10, Wake: 0.5, EstimatedSleep: 3600, Coffee: 300}, m)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, ErrArtifactNotFound)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadFile(writeArtifact(t, "name: Test\nweights: [1, 2]\n"))
		assert.ErrorIs(t, err, ErrInvalidArtifact)
	})

	t.Run("unsupported kind", func(t *testing.T) {
		_, err := LoadFile(writeArtifact(t, "name: Test\nkind: mlmodel\n"))
		assert.ErrorIs(t, err, ErrInvalidArtifact)
	})
}

func TestArtifactRoundTrip(t *testing.T) {
	m := &LinearModel{Name: "SleepCalculator", Kind: KindLinear, Intercept: -1800, Wake: 0.012, EstimatedSleep: 3600, Coffee: 540}

	a := m.Artifact()
	assert.Equal(t, "SleepCalculator", a.Name)
	assert.Equal(t, 540.0, a.CoffeeCoef)

	back, err := FromArtifact(a)
	require.NoError(t, err)
	assert.Equal(t, m, back)

	_, err = FromArtifact(&model.Artifact{Name: "x", Kind: "tree"})
	assert.ErrorIs(t, err, ErrInvalidArtifact)
}
