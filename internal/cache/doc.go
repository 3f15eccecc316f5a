// Package cache holds the process-wide record of which CPU capabilities are
// available.
//
// The record is a bitset of up to Capacity capability bits. It starts out
// uninitialized and is filled in by the first Test call, which runs the
// supplied Detector. There are no locks: if several goroutines see the cache
// uninitialized at the same time, each one runs the detector and stores its
// result. This is harmless as long as the detector is deterministic, because
// every store writes the same value and the value never changes afterwards.
//
// On platforms without cheap 64-bit atomics (386, arm, mips, mipsle) the
// bitset is stored as two 32-bit words. The high word carries the sentinel,
// so a reader that sees only the low word updated still reports the cache as
// uninitialized.
package cache
