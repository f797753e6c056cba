//go:build !linux
// +build !linux

package utils

import "fmt"

// Hardware counters need the linux perf subsystem.

func CountInstructions(f func()) (instructions uint64, err error) {
	f()
	err = fmt.Errorf("hardware counters unavailable on this platform")
	return
}

func CountCycles(f func()) (cycles uint64, err error) {
	f()
	err = fmt.Errorf("hardware counters unavailable on this platform")
	return
}
