package registry

import (
	"testing"

	"github.com/cwbudde/algo-simd/cpu"
)

func TestOpRegistry_Register(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})

	entries := reg.ListEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	reg.Reset()
	if n := len(reg.ListEntries()); n != 0 {
		t.Fatalf("expected empty registry after Reset, got %d entries", n)
	}
}

func TestOpRegistry_Lookup_Priority(t *testing.T) {
	reg := &OpRegistry{}

	// Registered out of priority order on purpose.
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"AVX2 available", cpu.Features{HasSSE2: true, HasAVX2: true}, "avx2"},
		{"SSE2 only", cpu.Features{HasSSE2: true}, "sse2"},
		{"no SIMD", cpu.Features{}, "generic"},
		{"ForceGeneric", cpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true}, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestOpRegistry_Lookup_ARM(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone})
	reg.Register(OpEntry{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 15})

	if got := reg.Lookup(cpu.Features{HasNEON: true}).Name; got != "neon" {
		t.Errorf("expected neon, got %q", got)
	}
	if got := reg.Lookup(cpu.Features{}).Name; got != "generic" {
		t.Errorf("expected generic, got %q", got)
	}
}

func TestOpRegistry_Lookup_Empty(t *testing.T) {
	reg := &OpRegistry{}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Errorf("expected nil, got %q", entry.Name)
	}
}

func TestOpRegistry_Resolve_FallsThrough(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{
		Name:     "generic",
		Sum:      func([]float64) float64 { return 0 },
		MulBlock: func(dst, a, b []float64) {},
	})
	reg.Register(OpEntry{
		Name:      "accelerated",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		MulBlock:  func(dst, a, b []float64) {},
	})

	features := cpu.Features{HasAVX2: true}

	mul := reg.Resolve(features, func(e *OpEntry) bool { return e.MulBlock != nil })
	if mul == nil || mul.Name != "accelerated" {
		t.Fatalf("MulBlock: expected accelerated, got %v", mul)
	}

	sum := reg.Resolve(features, func(e *OpEntry) bool { return e.Sum != nil })
	if sum == nil || sum.Name != "generic" {
		t.Fatalf("Sum: expected generic, got %v", sum)
	}

	power := reg.Resolve(features, func(e *OpEntry) bool { return e.Power != nil })
	if power != nil {
		t.Fatalf("Power: expected nil, got %q", power.Name)
	}
}
