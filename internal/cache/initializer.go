package cache

import "fmt"

// Capacity is the number of capability bits the cache can hold.
//
// Bit 63 is the sentinel bit. It is set in the uninitialized state and is
// never a capability, so a detected set with every real bit on stays
// distinguishable from "not yet detected".
const Capacity = 63

// sentinelBit is the reserved top bit.
const sentinelBit = Capacity

// valueMask keeps the capability bits of a raw value.
const valueMask = uint64(1)<<sentinelBit - 1

// Initializer is one detection result: bit i set means capability i is
// available.
type Initializer struct {
	bits uint64
}

// FromBits builds an Initializer from a raw bit pattern. The sentinel bit is
// dropped.
func FromBits(v uint64) Initializer {
	return Initializer{bits: v & valueMask}
}

// Bits returns the raw bit pattern.
func (i Initializer) Bits() uint64 {
	return i.bits
}

// Set marks capability bit as available.
func (i *Initializer) Set(bit uint32) {
	checkBit(bit)
	i.bits = SetBit(i.bits, bit)
}

// Clear marks capability bit as unavailable.
func (i *Initializer) Clear(bit uint32) {
	checkBit(bit)
	i.bits &^= 1 << bit
}

// Test reports whether capability bit is available.
func (i Initializer) Test(bit uint32) bool {
	checkBit(bit)
	return TestBit(i.bits, bit)
}

// Detector produces the capability set of the running machine.
//
// It must be deterministic and safe to call from several goroutines at once:
// the cache may call it more than once when goroutines race on the first
// query. Probes that fail should leave their bit unset.
type Detector func() Initializer

func checkBit(bit uint32) {
	if bit >= Capacity {
		bitOutOfRange(bit)
	}
}

//go:noinline
func bitOutOfRange(bit uint32) {
	panic(fmt.Sprintf("cache: capability bit %d out of range [0, %d)", bit, Capacity))
}
