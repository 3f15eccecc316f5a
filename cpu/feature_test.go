package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-simd/internal/cache"
)

func TestFeatureCatalogFitsCache(t *testing.T) {
	for _, f := range AllFeatures() {
		assert.Less(t, uint32(f), uint32(cache.Capacity), f.String())
	}
	assert.Len(t, AllFeatures(), int(numFeatures))
}

func TestFeatureNamesRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range AllFeatures() {
		name := f.String()
		require.NotEmpty(t, name, "feature %d has no name", uint32(f))
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true

		got, ok := ParseFeature(name)
		require.True(t, ok, name)
		assert.Equal(t, f, got)
	}
}

func TestParseFeatureIsLenient(t *testing.T) {
	for _, f := range AllFeatures() {
		got, ok := ParseFeature("  " + strings.ToUpper(f.String()) + " ")
		require.True(t, ok, f.String())
		assert.Equal(t, f, got)
	}
}

func TestParseFeatureUnknown(t *testing.T) {
	_, ok := ParseFeature("no-such-feature")
	assert.False(t, ok)
	_, ok = ParseFeature("")
	assert.False(t, ok)
}

func TestFeatureStringOutOfCatalog(t *testing.T) {
	assert.Equal(t, "Feature(62)", Feature(62).String())
}
