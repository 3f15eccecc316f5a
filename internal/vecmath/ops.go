package vecmath

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/vecmath/registry"
)

// op resolves one kernel from the global registry on first use.
type op[F any] struct {
	name string
	has  func(*registry.OpEntry) bool
	get  func(*registry.OpEntry) F

	once    sync.Once
	impl    F
	variant string
}

func (o *op[F]) kernel() F {
	o.once.Do(func() {
		entry := registry.Global.Resolve(cpu.DetectFeatures(), o.has)
		if entry == nil {
			panic(fmt.Sprintf("vecmath: no %s implementation registered", o.name))
		}
		o.impl = o.get(entry)
		o.variant = entry.Name
	})
	return o.impl
}

func (o *op[F]) selected() string {
	o.kernel()
	return o.variant
}

var (
	addOp = &op[func(dst, a, b []float64)]{
		name: "AddBlock",
		has:  func(e *registry.OpEntry) bool { return e.AddBlock != nil },
		get:  func(e *registry.OpEntry) func(dst, a, b []float64) { return e.AddBlock },
	}
	mulOp = &op[func(dst, a, b []float64)]{
		name: "MulBlock",
		has:  func(e *registry.OpEntry) bool { return e.MulBlock != nil },
		get:  func(e *registry.OpEntry) func(dst, a, b []float64) { return e.MulBlock },
	}
	mulInPlaceOp = &op[func(dst, src []float64)]{
		name: "MulBlockInPlace",
		has:  func(e *registry.OpEntry) bool { return e.MulBlockInPlace != nil },
		get:  func(e *registry.OpEntry) func(dst, src []float64) { return e.MulBlockInPlace },
	}
	scaleOp = &op[func(dst, src []float64, scale float64)]{
		name: "ScaleBlock",
		has:  func(e *registry.OpEntry) bool { return e.ScaleBlock != nil },
		get:  func(e *registry.OpEntry) func(dst, src []float64, scale float64) { return e.ScaleBlock },
	}
	sumOp = &op[func(x []float64) float64]{
		name: "Sum",
		has:  func(e *registry.OpEntry) bool { return e.Sum != nil },
		get:  func(e *registry.OpEntry) func(x []float64) float64 { return e.Sum },
	}
	dotOp = &op[func(a, b []float64) float64]{
		name: "DotProduct",
		has:  func(e *registry.OpEntry) bool { return e.DotProduct != nil },
		get:  func(e *registry.OpEntry) func(a, b []float64) float64 { return e.DotProduct },
	}
	maxAbsOp = &op[func(x []float64) float64]{
		name: "MaxAbs",
		has:  func(e *registry.OpEntry) bool { return e.MaxAbs != nil },
		get:  func(e *registry.OpEntry) func(x []float64) float64 { return e.MaxAbs },
	}
	magnitudeOp = &op[func(dst, re, im []float64)]{
		name: "Magnitude",
		has:  func(e *registry.OpEntry) bool { return e.Magnitude != nil },
		get:  func(e *registry.OpEntry) func(dst, re, im []float64) { return e.Magnitude },
	}
	powerOp = &op[func(dst, re, im []float64)]{
		name: "Power",
		has:  func(e *registry.OpEntry) bool { return e.Power != nil },
		get:  func(e *registry.OpEntry) func(dst, re, im []float64) { return e.Power },
	}
)

func checkLen(n int, others ...[]float64) {
	for _, s := range others {
		if len(s) != n {
			panic("vecmath: slice length mismatch")
		}
	}
}

// AddBlock computes dst[i] = a[i] + b[i].
func AddBlock(dst, a, b []float64) {
	checkLen(len(dst), a, b)
	addOp.kernel()(dst, a, b)
}

// MulBlock computes dst[i] = a[i] * b[i].
func MulBlock(dst, a, b []float64) {
	checkLen(len(dst), a, b)
	mulOp.kernel()(dst, a, b)
}

// MulBlockInPlace computes dst[i] *= src[i].
func MulBlockInPlace(dst, src []float64) {
	checkLen(len(dst), src)
	mulInPlaceOp.kernel()(dst, src)
}

// ScaleBlock computes dst[i] = src[i] * scale.
func ScaleBlock(dst, src []float64, scale float64) {
	checkLen(len(dst), src)
	scaleOp.kernel()(dst, src, scale)
}

// Sum returns the sum of x, or 0 for an empty slice.
func Sum(x []float64) float64 {
	return sumOp.kernel()(x)
}

// DotProduct returns sum(a[i] * b[i]).
func DotProduct(a, b []float64) float64 {
	checkLen(len(a), b)
	return dotOp.kernel()(a, b)
}

// MaxAbs returns the maximum absolute value in x, or 0 for an empty slice.
func MaxAbs(x []float64) float64 {
	return maxAbsOp.kernel()(x)
}

// Magnitude computes dst[i] = sqrt(re[i]^2 + im[i]^2).
func Magnitude(dst, re, im []float64) {
	checkLen(len(dst), re, im)
	magnitudeOp.kernel()(dst, re, im)
}

// Power computes dst[i] = re[i]^2 + im[i]^2.
func Power(dst, re, im []float64) {
	checkLen(len(dst), re, im)
	powerOp.kernel()(dst, re, im)
}

// Selection names the variant serving each operation.
type Selection struct {
	Op      string `json:"op" yaml:"op"`
	Variant string `json:"variant" yaml:"variant"`
}

// Selected resolves every operation and reports which variant serves it.
func Selected() []Selection {
	return []Selection{
		{addOp.name, addOp.selected()},
		{mulOp.name, mulOp.selected()},
		{mulInPlaceOp.name, mulInPlaceOp.selected()},
		{scaleOp.name, scaleOp.selected()},
		{sumOp.name, sumOp.selected()},
		{dotOp.name, dotOp.selected()},
		{maxAbsOp.name, maxAbsOp.selected()},
		{magnitudeOp.name, magnitudeOp.selected()},
		{powerOp.name, powerOp.selected()},
	}
}
