//go:build windows

package mshadow

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// clockStamp is a relative timestamp with the highest precision available on
// the runtime system. Values are only comparable between two clockSample()
// calls within the same program run on the same machine.
type clockStamp = int64

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")

	qpcFrequency = getFrequency()
)

// getFrequency returns the QPC frequency in ticks per second.
func getFrequency() int64 {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(fmt.Sprintf("QueryPerformanceFrequency failed: %v", err))
	}
	return freq
}

// clockSample returns a timestamp with the highest precision available on the
// current runtime system.
func clockSample() clockStamp {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return qpc
}

// clockDiff returns the difference between two timestamps in nanoseconds.
// It assumes tLater is later than tEarlier and returns a negative value
// otherwise. The conversion contains one integer division.
func clockDiff(tEarlier, tLater clockStamp) int64 {
	result := tLater - tEarlier
	result *= int64(1_000_000_000) // ns per sec
	result /= qpcFrequency
	return result
}
