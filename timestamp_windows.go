//go:build windows

package randperm

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// The wall clock on Windows ticks at roughly 100ns. QueryPerformanceCounter
// gives a much finer counter, so consecutive constructions do not collide on
// the same seed.
var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")
)

func timestamp() uint64 {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return uint64(qpc)
}
