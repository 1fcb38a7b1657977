package hal

import (
	"sync"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/clock"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/logging"
)

// encodeSession tracks the single video encode tuning action a process may
// have active. Every field is guarded by mu, including from timer callbacks.
type encodeSession struct {
	mu sync.Mutex

	enabled      bool
	curHintID    int32
	shouldEnable bool
	newHintID    int32
	// counter identifies the latest delayed enable; it wraps 65535 -> 0.
	counter uint16
	timer   *clock.Timer
	closed  bool
}

// EncodeState is a snapshot of the video encode session.
type EncodeState struct {
	Enabled       bool
	Pending       bool
	CurrentHintID int32
	Counter       uint16
}

func (h *HAL) EncodeState() EncodeState {
	s := &h.encode
	s.mu.Lock()
	defer s.mu.Unlock()
	return EncodeState{
		Enabled:       s.enabled,
		Pending:       s.shouldEnable,
		CurrentHintID: s.curHintID,
		Counter:       s.counter,
	}
}

func (h *HAL) videoEncode(req Request) (Result, outcome) {
	mode := h.chip.VideoEncode()
	switch mode {
	case EncodeUnhandled:
		return NotHandled, outcomeUnhandled
	case EncodeNoOp:
		return Handled, outcomeIgnored
	}

	governor, err := h.governor()
	if err != nil {
		return NotHandled, outcomeFailed
	}
	if req.Metadata == "" {
		return Handled, outcomeIgnored
	}
	meta, err := ParseVideoEncodeMetadata(req.Metadata)
	if err != nil {
		logging.Error("Error occurred while parsing metadata: %v", err)
		return Handled, outcomeFailed
	}
	if !h.isInteractive(governor) {
		logging.Verbose("%s: governor %s ignores video encode hints", h.chip.Name(), governor)
		return Handled, outcomeIgnored
	}

	switch meta.State {
	case 1:
		if mode == EncodeDelayed {
			return Handled, h.scheduleEncode(meta.HintID)
		}
		return Handled, h.enableEncode(meta.HintID)
	case 0:
		return Handled, h.disableEncode()
	}
	return Handled, outcomeIgnored
}

func (h *HAL) enableEncode(hintID int32) outcome {
	s := &h.encode
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enabled {
		logging.Verbose("%s: video encode hint %#x already sent", h.chip.Name(), s.curHintID)
		return outcomeSuppressed
	}
	if s.closed {
		logging.Error("Error sending video encode hint %#x: %v", hintID, ErrClosed)
		return outcomeFailed
	}
	h.platform.Runtime.Perform(hintID, h.chip.VideoEncodeTable(h.chipVariant()))
	s.enabled = true
	s.curHintID = hintID
	h.metrics.encode(h.chip.Name(), true)
	return outcomeApplied
}

// scheduleEncode arms a delayed enable for hintID. Any enable still pending
// is superseded: only the newest request may fire.
func (h *HAL) scheduleEncode(hintID int32) outcome {
	s := &h.encode
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enabled {
		logging.Verbose("%s: video encode hint %#x already sent", h.chip.Name(), s.curHintID)
		return outcomeSuppressed
	}

	if s.closed {
		logging.Error("Error constructing hint timer: %v", ErrClosed)
		return outcomeFailed
	}
	s.newHintID = hintID
	s.counter++
	s.shouldEnable = true

	if s.timer != nil {
		s.timer.Stop()
	}
	expected := s.counter
	s.timer = h.clock.AfterFunc(h.encodeDelay, func() {
		h.delayedEncode(expected)
	})
	logging.Debug("%s: video encode hint %#x armed as #%d", h.chip.Name(), hintID, expected)
	return outcomeApplied
}

// delayedEncode runs once the encode delay has passed. It applies the
// table only if encoding was not stopped and no newer start superseded it.
func (h *HAL) delayedEncode(expected uint16) {
	s := &h.encode
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.shouldEnable || s.counter != expected {
		logging.Verbose("%s: stale video encode enable #%d (current #%d)", h.chip.Name(), expected, s.counter)
		return
	}
	h.platform.Runtime.Perform(s.newHintID, h.chip.VideoEncodeTable(h.chipVariant()))
	s.curHintID = s.newHintID
	s.enabled = true
	s.shouldEnable = false
	s.timer = nil
	h.metrics.encode(h.chip.Name(), true)
}

func (h *HAL) disableEncode() outcome {
	s := &h.encode
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shouldEnable = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if !s.enabled {
		return outcomeIgnored
	}
	h.platform.Runtime.Undo(s.curHintID)
	s.enabled = false
	h.metrics.encode(h.chip.Name(), false)
	return outcomeApplied
}
