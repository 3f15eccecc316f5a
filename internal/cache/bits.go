package cache

// SetBit returns x with bit set.
func SetBit(x uint64, bit uint32) uint64 {
	return x | 1<<bit
}

// TestBit reports whether bit is set in x.
func TestBit(x uint64, bit uint32) bool {
	return x&(1<<bit) != 0
}
