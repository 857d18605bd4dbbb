package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powersat/orbitalcost/pkg/params"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadParameters_MergesOverDefaults(t *testing.T) {
	path := writeFile(t, "params.json", `{
		"launchCostPerKg": 150,
		"pue": 1.3,
		"years": 3
	}`)

	p, err := LoadParameters(path)
	require.NoError(t, err)

	assert.Equal(t, 150.0, p.LaunchCostPerKg)
	assert.Equal(t, 1.3, p.PUE)
	assert.Equal(t, 3, p.Years)

	// Untouched fields keep their defaults.
	def := params.Default()
	assert.Equal(t, def.SatelliteCostPerW, p.SatelliteCostPerW)
	assert.Equal(t, def.HeatRateBtuKWh, p.HeatRateBtuKWh)
}

func TestLoadParameters_YAML(t *testing.T) {
	path := writeFile(t, "params.yaml", "gasPricePerMMBtu: 6.5\nbetaAngle: 75\n")

	p, err := LoadParameters(path)
	require.NoError(t, err)
	assert.Equal(t, 6.5, p.GasPricePerMMBtu)
	assert.Equal(t, 75.0, p.BetaAngleDeg)
}

func TestLoadParameters_UnknownKey(t *testing.T) {
	path := writeFile(t, "params.json", `{"warpdrive": 9}`)

	_, err := LoadParameters(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warpdrive")
}

func TestLoadParameters_MissingFile(t *testing.T) {
	_, err := LoadParameters(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadScenario(t *testing.T) {
	path := writeFile(t, "sweep.yaml", `
workers: 4
grid:
  axes:
    - param: launchCostPerKg
      from: 100
      to: 1000
      steps: 10
    - param: gasPricePerMMBtu
      from: 3
      to: 8
      steps: 6
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Workers)
	require.Len(t, s.Grid.Axes, 2)
	assert.Equal(t, "launchCostPerKg", s.Grid.Axes[0].Param)
	assert.Equal(t, 10, s.Grid.Axes[0].Steps)
	assert.Equal(t, 60, s.Grid.Size())
}

func TestLoadScenario_NoAxes(t *testing.T) {
	path := writeFile(t, "sweep.yaml", "workers: 2\n")

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sweep axes")
}
