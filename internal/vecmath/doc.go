// Package vecmath provides float64 block kernels that pick their
// implementation at first use from the variants in the registry, based on
// the capabilities the cpu package reports.
//
// All operations panic with "vecmath: slice length mismatch" when their
// slice arguments differ in length.
package vecmath
