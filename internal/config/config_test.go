package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnxnguyen/newton/field"
	"github.com/johnxnguyen/newton/internal/config"
)

const sampleYAML = `
params:
  g: 1.0
  theta: 0.5
  min_dist: 1.0

groups:
  - count: 8
    mass_min: 1.0
    mass_max: 1.0
    min_dist: 10
    max_dist: 20
    tangential_velocity: 0.5
    seed: 7
  - count: 4
    mass_min: 2.0
    mass_max: 5.0
    min_dist: 1
    max_dist: 2
    tangential_velocity: 0.1
    rotation: 1.57
    center: [100, 0]
    seed: 11
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "universe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadAndPopulate(t *testing.T) {
	path := writeConfig(t, sampleYAML)

	doc, err := config.Load(path, nil)
	require.NoError(t, err)
	require.Len(t, doc.Groups, 2)

	f := field.New(doc.FieldParams())
	require.NoError(t, doc.Populate(f))
	assert.Equal(t, 12, f.Len())
}

func TestLoadRejectsEmptyGroups(t *testing.T) {
	path := writeConfig(t, "groups: []\n")
	_, err := config.Load(path, nil)
	assert.ErrorIs(t, err, config.ErrConfigInvalid)
}

func TestLoadRejectsBadMassRange(t *testing.T) {
	path := writeConfig(t, `
groups:
  - count: 1
    mass_min: 5
    mass_max: 1
    min_dist: 1
    max_dist: 2
`)
	_, err := config.Load(path, nil)
	assert.ErrorIs(t, err, config.ErrConfigInvalid)
}

func TestFieldParamsFallsBackToDefaults(t *testing.T) {
	doc := &config.Document{Groups: []config.Group{{Count: 1, MassMin: 1, MassMax: 1, MinDist: 1, MaxDist: 1}}}
	p := doc.FieldParams()
	assert.Equal(t, field.DefaultParams(), p)
}
