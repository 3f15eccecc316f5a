package cache

// Cache is a lazily filled capability bitset. Use New to create one; the
// zero value is not ready for use.
type Cache struct {
	s nativeStorage
}

// New returns an uninitialized cache.
func New() *Cache {
	c := &Cache{}
	c.s.reset()
	return c
}

// IsUninitialized reports whether no detection result has been stored yet.
func (c *Cache) IsUninitialized() bool {
	return c.s.uninitialized()
}

// Test reports whether capability bit is set, running detect first if the
// cache has not been filled yet. It panics if bit >= Capacity.
//
// Once any call has stored a result, later calls on every goroutine read
// the stored value and never call detect again.
func (c *Cache) Test(bit uint32, detect Detector) bool {
	return lazyTest(&c.s, bit, detect)
}

// global is the process-wide cache shared by every capability query.
var global = New()

// IsUninitialized reports whether the process-wide cache has not been
// filled yet.
func IsUninitialized() bool {
	return global.IsUninitialized()
}

// Test queries the process-wide cache. See Cache.Test.
func Test(bit uint32, detect Detector) bool {
	return global.Test(bit, detect)
}
