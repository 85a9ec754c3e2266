// Package mlfqs implements the arithmetic of the 4.4BSD multi-level
// feedback queue scheduler on top of [fp17.Fixed] values.
//
// The package keeps no state: the caller owns each thread's nice and
// recent cpu values and the system wide load average, and feeds them
// through these functions at the usual points (every tick, every fourth
// tick, once per second).
package mlfqs

import "github.com/tinne26/fp17"

// Priority and niceness bounds.
const (
	PriMin  = 0
	PriMax  = 63
	NiceMin = -20
	NiceMax = 20
)

// Coefficients of the load average moving average.
var (
	loadDecay  = fp17.FromInt(59).Div(fp17.FromInt(60))
	loadWeight = fp17.One.Div(fp17.FromInt(60))
)

// Returns the priority for a thread with the given recent cpu and
// nice values: PriMax - recentCPU/4 - 2*nice, truncated and clamped
// to [PriMin, PriMax]. Recomputed every fourth tick.
func Priority(recentCPU fp17.Fixed, nice int) int {
	priority := fp17.FromInt(PriMax).Sub(recentCPU.DivInt(4)).SubInt(2*nice).ToIntTrunc()
	if priority < PriMin { return PriMin }
	if priority > PriMax { return PriMax }
	return priority
}

// Returns the decayed recent cpu value for a thread:
// (2*loadAvg)/(2*loadAvg + 1) * recentCPU + nice.
// Recomputed for every thread once per second.
func RecentCPU(recentCPU, loadAvg fp17.Fixed, nice int) fp17.Fixed {
	twice := loadAvg.MulInt(2)
	coef  := twice.Div(twice.AddInt(1))
	return coef.Mul(recentCPU).AddInt(nice)
}

// Returns the next load average given the number of threads that
// are running or ready to run: (59/60)*loadAvg + (1/60)*readyThreads.
// Recomputed once per second.
func LoadAvg(loadAvg fp17.Fixed, readyThreads int) fp17.Fixed {
	return loadDecay.Mul(loadAvg).Add(loadWeight.MulInt(readyThreads))
}

// Returns the recent cpu value of the running thread after one more
// timer tick. The idle thread should never be ticked.
func Tick(recentCPU fp17.Fixed) fp17.Fixed {
	return recentCPU.AddInt(1)
}

// Returns 100 times the given value rounded to the nearest integer,
// which is how load averages and recent cpu values are reported.
func Report(value fp17.Fixed) int {
	return value.MulInt(100).ToIntNearest()
}

// Clamps a nice value to [NiceMin, NiceMax].
func ClampNice(nice int) int {
	if nice < NiceMin { return NiceMin }
	if nice > NiceMax { return NiceMax }
	return nice
}
