package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTestBit(t *testing.T) {
	for bit := uint32(0); bit < 64; bit++ {
		x := SetBit(0, bit)
		assert.Equal(t, uint64(1)<<bit, x, "bit %d", bit)
		assert.True(t, TestBit(x, bit), "bit %d", bit)
		if bit > 0 {
			assert.False(t, TestBit(x, bit-1), "bit %d", bit-1)
		}
	}
}

func TestSetBitIsIdempotent(t *testing.T) {
	x := SetBit(SetBit(0, 5), 5)
	assert.Equal(t, uint64(1)<<5, x)
}

func TestInitializerBoundaries(t *testing.T) {
	var init Initializer
	init.Set(0)
	init.Set(Capacity - 1)

	assert.True(t, init.Test(0))
	assert.True(t, init.Test(Capacity-1))
	for bit := uint32(1); bit < Capacity-1; bit++ {
		assert.False(t, init.Test(bit), "bit %d", bit)
	}

	init.Clear(0)
	assert.False(t, init.Test(0))
	assert.Equal(t, uint64(1)<<(Capacity-1), init.Bits())
}

func TestInitializerRejectsSentinelBit(t *testing.T) {
	var init Initializer
	assert.Panics(t, func() { init.Set(Capacity) })
	assert.Panics(t, func() { init.Set(64) })
	assert.Panics(t, func() { init.Test(Capacity) })
	assert.Panics(t, func() { init.Clear(Capacity) })
	assert.Zero(t, init.Bits())
}

func TestFromBitsDropsSentinel(t *testing.T) {
	assert.Equal(t, valueMask, FromBits(^uint64(0)).Bits())
	assert.Equal(t, uint64(0b101), FromBits(0b101).Bits())
	assert.False(t, TestBit(FromBits(1<<63).Bits(), 63))
}
