package cpu

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-simd/internal/cache"
)

// Feature is the bit index of one capability in the detection cache.
//
// Indices are assigned per GOARCH and are stable across builds; changing the
// meaning of an index is a breaking change.
type Feature uint32

// Fails to compile when the catalog outgrows the cache.
var _ [cache.Capacity - numFeatures]struct{}

// String returns the canonical lower-case name, e.g. "avx2" or "sse4.1".
func (f Feature) String() string {
	if f < numFeatures {
		return featureNames[f]
	}
	return fmt.Sprintf("Feature(%d)", uint32(f))
}

var featuresByName = func() map[string]Feature {
	m := make(map[string]Feature, len(featureNames))
	for i, name := range featureNames {
		m[name] = Feature(i)
	}
	return m
}()

// ParseFeature looks up a feature by name. Matching ignores case and
// surrounding whitespace.
func ParseFeature(name string) (Feature, bool) {
	f, ok := featuresByName[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// AllFeatures returns every feature known on this GOARCH, in bit order.
func AllFeatures() []Feature {
	out := make([]Feature, numFeatures)
	for i := range out {
		out[i] = Feature(i)
	}
	return out
}
