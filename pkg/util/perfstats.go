package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats provides a snapshot of time and memory allocation at a given point,
// against which the cost of an operation can be reported.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// NewPerfStats creates a new snapshot of the current time and amount of memory
// allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	startTime := time.Now()

	runtime.ReadMemStats(&m)

	return &PerfStats{startTime, m.TotalAlloc, m.NumGC}
}

// Log logs (at debug level) the difference between the state now and as it was
// when the PerfStats object was created.  Records are small, hence allocation is
// reported in Kb.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)
	alloc := (m.TotalAlloc - p.startMem) / 1024
	gcs := m.NumGC - p.startGc
	exectime := time.Since(p.startTime)

	log.Debugf("%s took %v using %v Kb (%v GC events)", prefix, exectime, alloc, gcs)
}
