//go:build 386 || arm || mips || mipsle

package cache

// 64-bit atomics on these targets go through CAS loops or a runtime lock.
type nativeStorage = splitStorage
