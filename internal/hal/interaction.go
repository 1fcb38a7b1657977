package hal

import (
	"sync"
	"time"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/logging"
)

const (
	defaultInteractionMs int32 = 500
	maxInteractionMs     int32 = 5000
	flingThresholdMs     int32 = 1500
	launchMs             int32 = 2000
)

// interactionDebounce remembers the last boost that reached the runtime.
type interactionDebounce struct {
	mu       sync.Mutex
	last     time.Time
	duration int32
}

// admit records a boost of durationMs at now unless the previous boost
// still outlasts it.
func (d *interactionDebounce) admit(now time.Time, durationMs int32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.last.IsZero() {
		elapsedUs := now.Sub(d.last).Microseconds()
		if int64(d.duration)*1000 > elapsedUs+int64(durationMs)*1000 {
			return false
		}
	}
	d.last = now
	d.duration = durationMs
	return true
}

// interactionDuration applies the default and the ceiling to a requested
// boost length. Requests shorter than the default keep the default.
func interactionDuration(requested *int32) int32 {
	duration := defaultInteractionMs
	if requested != nil && *requested > duration {
		duration = *requested
		if duration > maxInteractionMs {
			duration = maxInteractionMs
		}
	}
	return duration
}

func (h *HAL) interaction(req Request) (Result, outcome) {
	boost, fling, ok := h.chip.InteractionTables()
	if !ok {
		return NotHandled, outcomeUnhandled
	}

	duration := interactionDuration(req.Duration)
	if !h.debounce.admit(h.clock.Now(), duration) {
		logging.Verbose("%s: interaction %dms covered by previous boost", h.chip.Name(), duration)
		return Handled, outcomeSuppressed
	}

	table := boost
	if duration >= flingThresholdMs {
		table = fling
	}
	logging.Debug("%s: interaction %dms with %s", h.chip.Name(), duration, table)
	h.platform.Runtime.Interaction(time.Duration(duration)*time.Millisecond, table)
	return Handled, outcomeApplied
}

func (h *HAL) launch() (Result, outcome) {
	table, ok := h.chip.LaunchTable()
	if !ok {
		return NotHandled, outcomeUnhandled
	}
	logging.Debug("%s: launch %dms with %s", h.chip.Name(), launchMs, table)
	h.platform.Runtime.Interaction(time.Duration(launchMs)*time.Millisecond, table)
	return Handled, outcomeApplied
}
