package router

import (
	"fmt"
	"time"
)

// Decomposition log categories.
// @see BuildContext
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota // A progress log entry.
	LogWarning                         // A warning log entry.
	LogError                           // An error log entry.
)

// Decomposition performance timer categories.
// @see BuildContext
type TimerLabel int

const (
	// The total time of the decomposition.
	TimerTotal TimerLabel = iota
	// The time to paint the subcell silhouettes.
	TimerPaint
	// The time to clip free tiles to the area and seed the flags.
	TimerPrime
	// The time to run the corner extension over the solid tiles.
	TimerExtend
	// The time to collect the channel records.
	TimerChannels
	// The maximum number of timers. (Used for iterating timers.)
	maxTimers
)

const maxMessages = 1000

// BuildContext is the build context for a decomposition. It buffers
// log messages and accumulates per-phase timings; both can be disabled,
// in which case every call is a no-op.
type BuildContext struct {
	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages    [maxMessages]string
	numMessages int

	logEnabled   bool
	timerEnabled bool
}

// NewBuildContext returns a build context with logging and timers
// enabled or disabled according to state.
func NewBuildContext(state bool) *BuildContext {
	return &BuildContext{
		logEnabled:   state,
		timerEnabled: state,
	}
}

// EnableLog enables or disables logging.
func (ctx *BuildContext) EnableLog(state bool) {
	ctx.logEnabled = state
}

// EnableTimer enables or disables the performance timers.
func (ctx *BuildContext) EnableTimer(state bool) {
	ctx.timerEnabled = state
}

// ResetLog clears all log entries.
func (ctx *BuildContext) ResetLog() {
	if ctx.logEnabled {
		ctx.numMessages = 0
	}
}

// ResetTimers clears all performance timers.
func (ctx *BuildContext) ResetTimers() {
	if ctx.timerEnabled {
		for i := range ctx.accTime {
			ctx.accTime[i] = 0
		}
	}
}

func (ctx *BuildContext) Progressf(format string, v ...interface{}) {
	ctx.Log(LogProgress, format, v...)
}

func (ctx *BuildContext) Warningf(format string, v ...interface{}) {
	ctx.Log(LogWarning, format, v...)
}

func (ctx *BuildContext) Errorf(format string, v ...interface{}) {
	ctx.Log(LogError, format, v...)
}

// Log stores a formatted message under the given category.
func (ctx *BuildContext) Log(category LogCategory, format string, v ...interface{}) {
	if ctx.logEnabled && ctx.numMessages < maxMessages {
		switch category {
		case LogProgress:
			ctx.messages[ctx.numMessages] = "PROG " + fmt.Sprintf(format, v...)
		case LogWarning:
			ctx.messages[ctx.numMessages] = "WARN " + fmt.Sprintf(format, v...)
		case LogError:
			ctx.messages[ctx.numMessages] = "ERR " + fmt.Sprintf(format, v...)
		}
		ctx.numMessages++
	}
}

// DumpLog prints a header then all buffered messages to stdout.
func (ctx *BuildContext) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for i := 0; i < ctx.numMessages; i++ {
		fmt.Println(ctx.messages[i])
	}
}

// StartTimer starts the given performance timer.
func (ctx *BuildContext) StartTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.startTime[label] = time.Now()
	}
}

// StopTimer accumulates the time elapsed since StartTimer for the
// given timer.
func (ctx *BuildContext) StopTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.accTime[label] += time.Since(ctx.startTime[label])
	}
}

// AccumulatedTime returns the total accumulated time of the given
// timer, or -1 if timers are disabled.
func (ctx *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	if !ctx.timerEnabled {
		return -1
	}
	return ctx.accTime[label]
}

func logLine(ctx *BuildContext, label TimerLabel, name string, pc float64) {
	t := ctx.AccumulatedTime(label)
	if t < 0 {
		return
	}
	ctx.Progressf("%s:\t%.2fms\t(%.1f%%)", name, float64(t)/float64(time.Millisecond), float64(t)*pc)
}

// LogDecomposeTimes logs the accumulated per-phase timings.
func LogDecomposeTimes(ctx *BuildContext, totalTime time.Duration) {
	pc := 100.0 / float64(totalTime)
	ctx.Progressf("Decompose Times")
	logLine(ctx, TimerPaint, "- Paint Subcells\t", pc)
	logLine(ctx, TimerPrime, "- Prime Boundary\t", pc)
	logLine(ctx, TimerExtend, "- Extend Corners\t", pc)
	logLine(ctx, TimerChannels, "- Collect Channels\t", pc)
	ctx.Progressf("=== TOTAL:\t%v", totalTime)
}
