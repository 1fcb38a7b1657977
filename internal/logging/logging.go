// Package logging carries PowerPulse's printf-style log helpers. Messages go
// to logcat on Android and to stdout everywhere else.
package logging

import (
	"fmt"
	"strings"
	"sync"
)

const LOG_TAG = "PowerPulse"

type Priority int32

// Values match android_LogPriority so they can be handed to liblog as-is.
const (
	LogUnknown Priority = iota
	LogDefault
	LogVerbose
	LogDebug
	LogInfo
	LogWarn
	LogError
	LogFatal
	LogSilent
)

func (p Priority) String() string {
	switch p {
	case LogDefault:
		return "*"
	case LogVerbose:
		return "V"
	case LogDebug:
		return "D"
	case LogInfo:
		return "I"
	case LogWarn:
		return "W"
	case LogError:
		return "E"
	case LogFatal:
		return "F"
	}
	return "Unknown"
}

// Sink receives every message that passes the debug/verbose gates.
type Sink func(prio Priority, msg string)

var (
	mu      sync.RWMutex
	debug        = false
	verbose      = false
	sink    Sink = logMsg
)

func SetDebug(enabled bool) {
	mu.Lock()
	debug = enabled
	mu.Unlock()
}

func SetVerbose(enabled bool) {
	mu.Lock()
	verbose = enabled
	mu.Unlock()
}

func DebugEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debug
}

// SetSink replaces the log backend and returns a func restoring the previous one.
func SetSink(s Sink) (restore func()) {
	mu.Lock()
	prev := sink
	sink = s
	mu.Unlock()
	return func() {
		mu.Lock()
		sink = prev
		mu.Unlock()
	}
}

func parseMsg(prio Priority, format string, replacements ...any) {
	mu.RLock()
	out := sink
	gated := (prio == LogDebug && !debug) || (prio == LogVerbose && !verbose)
	mu.RUnlock()
	if gated || prio == LogSilent {
		return
	}

	if len(replacements) < 1 {
		replacements = []any{format}
		format = "%v"
	}
	msg := strings.TrimRight(fmt.Sprintf(format, replacements...), "\n")
	if msg != "" {
		out(prio, msg)
	}
}

func Info(format string, replacements ...any) {
	parseMsg(LogInfo, format, replacements...)
}
func Warn(format string, replacements ...any) {
	parseMsg(LogWarn, format, replacements...)
}
func Error(format string, replacements ...any) {
	parseMsg(LogError, format, replacements...)
}
func Verbose(format string, replacements ...any) {
	parseMsg(LogVerbose, format, replacements...)
}
func Debug(format string, replacements ...any) {
	parseMsg(LogDebug, format, replacements...)
}
