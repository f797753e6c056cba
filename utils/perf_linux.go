//go:build linux
// +build linux

package utils

import (
	perf "github.com/hodgesds/perf-utils"
)

// CountInstructions runs f under a hardware instruction counter.
func CountInstructions(f func()) (instructions uint64, err error) {
	var (
		pv *perf.ProfileValue
	)
	if pv, err = perf.CPUInstructions(func() error { f(); return nil }); err != nil {
		return
	}
	instructions = pv.Value
	return
}

// CountCycles runs f under a hardware cycle counter.
func CountCycles(f func()) (cycles uint64, err error) {
	var (
		pv *perf.ProfileValue
	)
	if pv, err = perf.CPUCycles(func() error { f(); return nil }); err != nil {
		return
	}
	cycles = pv.Value
	return
}
