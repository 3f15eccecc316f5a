package cache

import "sync/atomic"

// storage is the atomically accessed backing word(s) of a Cache.
type storage interface {
	uninitialized() bool
	test(bit uint32) bool
	initialize(v Initializer)
}

// wordStorage keeps the bitset in one 64-bit atomic word.
type wordStorage struct {
	v atomic.Uint64
}

func (s *wordStorage) reset() {
	s.v.Store(^uint64(0))
}

func (s *wordStorage) uninitialized() bool {
	return s.v.Load() == ^uint64(0)
}

func (s *wordStorage) test(bit uint32) bool {
	return TestBit(s.v.Load(), bit)
}

func (s *wordStorage) initialize(v Initializer) {
	s.v.Store(v.bits)
}

// splitStorage keeps the bitset in two 32-bit atomic words.
//
// The halves are not written as one transaction. The low word is stored
// first and only the high word is compared against the sentinel, so a
// half-written cache still reads as uninitialized.
type splitStorage struct {
	lo atomic.Uint32
	hi atomic.Uint32
}

func (s *splitStorage) reset() {
	s.lo.Store(^uint32(0))
	s.hi.Store(^uint32(0))
}

func (s *splitStorage) uninitialized() bool {
	return s.hi.Load() == ^uint32(0)
}

func (s *splitStorage) test(bit uint32) bool {
	if bit < 32 {
		return TestBit(uint64(s.lo.Load()), bit)
	}
	return TestBit(uint64(s.hi.Load()), bit-32)
}

func (s *splitStorage) initialize(v Initializer) {
	s.lo.Store(uint32(v.bits))
	s.hi.Store(uint32(v.bits >> 32))
}

// lazyTest runs detect if s is still uninitialized, then tests bit.
func lazyTest[S storage](s S, bit uint32, detect Detector) bool {
	checkBit(bit)
	if s.uninitialized() {
		s.initialize(detect())
	}
	return s.test(bit)
}
