// Package metrics reads Go runtime statistics for the verbose execution
// report.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// Delta returns the difference between two snapshots, useful for estimating
// the footprint of a single summation run. Counters that can only grow
// (NumGC, PauseTotalNs) are subtracted; gauge-like fields may go negative
// and are clamped to zero.
func Delta(before, after MemorySnapshot) MemorySnapshot {
	return MemorySnapshot{
		HeapAlloc:    clampSub(after.HeapAlloc, before.HeapAlloc),
		HeapSys:      clampSub(after.HeapSys, before.HeapSys),
		Sys:          clampSub(after.Sys, before.Sys),
		NumGC:        after.NumGC - before.NumGC,
		PauseTotalNs: after.PauseTotalNs - before.PauseTotalNs,
		HeapObjects:  clampSub(after.HeapObjects, before.HeapObjects),
	}
}

func clampSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
