//go:build !(386 || arm || mips || mipsle)

package cache

type nativeStorage = wordStorage
