// Package registry holds the kernel variants available to vecmath and picks
// one for the running CPU.
//
// Variant packages register themselves from init(). Selection compares each
// entry's SIMD level against a cpu.Features snapshot, which cpu builds from
// the process-wide detection cache.
package registry

import (
	"sort"
	"sync"

	"github.com/cwbudde/algo-simd/cpu"
)

// OpEntry is one implementation variant. Only the operations the variant
// accelerates need to be set; Resolve falls through to lower-priority
// entries for the rest.
type OpEntry struct {
	// Name identifies the variant (e.g., "generic", "accelerated").
	Name string

	// SIMDLevel is the level the running CPU must support.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins.
	//   - generic: 0
	//   - accelerated: 20
	Priority int

	// AddBlock: dst[i] = a[i] + b[i].
	AddBlock func(dst, a, b []float64)

	// MulBlock: dst[i] = a[i] * b[i].
	MulBlock func(dst, a, b []float64)

	// MulBlockInPlace: dst[i] *= src[i].
	MulBlockInPlace func(dst, src []float64)

	// ScaleBlock: dst[i] = src[i] * scalar.
	ScaleBlock func(dst, src []float64, scalar float64)

	// Sum returns sum(x[i]).
	Sum func(x []float64) float64

	// DotProduct returns sum(a[i] * b[i]).
	DotProduct func(a, b []float64) float64

	// MaxAbs returns max(|x[i]|).
	MaxAbs func(x []float64) float64

	// Magnitude: dst[i] = sqrt(re[i]^2 + im[i]^2).
	Magnitude func(dst, re, im []float64)

	// Power: dst[i] = re[i]^2 + im[i]^2.
	Power func(dst, re, im []float64)
}

// OpRegistry is a set of implementation variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry used by vecmath.
var Global = &OpRegistry{}

// Register adds a variant. All registrations should complete before the
// first lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with features, or
// nil if none is.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	return r.Resolve(features, func(*OpEntry) bool { return true })
}

// Resolve returns the highest-priority entry compatible with features for
// which has reports true, or nil.
func (r *OpRegistry) Resolve(features cpu.Features, has func(*OpEntry) bool) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) && has(entry) {
			return entry
		}
	}
	return nil
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].Priority > r.entries[j].Priority
	})
	r.sorted = true
}

// ListEntries returns a copy of the registered entries.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset removes every entry. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
