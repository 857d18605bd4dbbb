package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_ReportsFieldAndRange(t *testing.T) {
	p := Default()
	p.LaunchCostPerKg = 5000

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "launchCostPerKg")
	assert.Contains(t, err.Error(), "2940")
}

func TestValidate_JoinsAllViolations(t *testing.T) {
	p := Default()
	p.PUE = 3
	p.SunFraction = 0.1
	p.BetaAngleDeg = 10

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pue")
	assert.Contains(t, err.Error(), "sunFraction")
	assert.Contains(t, err.Error(), "betaAngle")
}

func TestApply_AllMetadataKeys(t *testing.T) {
	// Every published key must round-trip through Apply.
	p := Default()
	for _, m := range Metadata() {
		q, err := Apply(p, m.Key, 2)
		require.NoError(t, err, "key %s", m.Key)
		assert.NotEqual(t, p, q, "key %s had no effect", m.Key)
	}
}

func TestApply_UnknownKey(t *testing.T) {
	_, err := Apply(Default(), "warpDriveCost", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warpDriveCost")
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	p := Default()
	q, err := Apply(p, "launchCostPerKg", 42)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
	assert.Equal(t, 42.0, q.LaunchCostPerKg)
}

func TestMetadata_CategoriesAndPercent(t *testing.T) {
	byKey := map[string]FieldMeta{}
	for _, m := range Metadata() {
		byKey[m.Key] = m
	}

	assert.Len(t, byKey, 27)
	assert.Equal(t, "orbital", byKey["launchCostPerKg"].Category)
	assert.Equal(t, "natgas", byKey["pue"].Category)
	assert.Equal(t, "thermal", byKey["betaAngle"].Category)
	assert.True(t, byKey["cellDegradation"].Percent)
	assert.True(t, byKey["gpuFailureRate"].Percent)
	assert.False(t, byKey["pue"].Percent)
}
