// Package hal implements the per-chipset power hint overrides of the
// Qualcomm power HAL: interaction and launch boosts, the video encode
// session and display on/off tuning, for each supported SoC family.
package hal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/clock"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/logging"
)

var ErrClosed = errors.New("power HAL is closed")

// DefaultVideoEncodeDelay is how long a delayed encode enable waits for the
// camera to settle before offlining cores.
const DefaultVideoEncodeDelay = 2 * time.Second

// HAL is the process-wide state behind the two host entry points.
type HAL struct {
	chip        Chip
	platform    Platform
	clock       clock.Clock
	encodeDelay time.Duration
	interactive map[string]bool
	metrics     *Metrics

	variantOnce sync.Once
	variant     Variant

	debounce interactionDebounce
	encode   encodeSession
}

type Option func(*HAL)

func WithClock(c clock.Clock) Option {
	return func(h *HAL) { h.clock = c }
}

func WithVideoEncodeDelay(d time.Duration) Option {
	return func(h *HAL) { h.encodeDelay = d }
}

// WithInteractiveGovernors replaces the governors treated as interactive.
func WithInteractiveGovernors(names ...string) Option {
	return func(h *HAL) { h.interactive = interactiveSet(names) }
}

func WithMetrics(m *Metrics) Option {
	return func(h *HAL) { h.metrics = m }
}

func New(chip Chip, platform Platform, opts ...Option) (*HAL, error) {
	if chip == nil {
		return nil, fmt.Errorf("new power HAL: %w: nil", ErrUnknownChip)
	}
	if platform.Governor == nil || platform.Runtime == nil {
		return nil, fmt.Errorf("new power HAL for %s: governor reader and runtime are required", chip.Name())
	}

	h := &HAL{
		chip:        chip,
		platform:    platform,
		clock:       clock.Real(),
		encodeDelay: DefaultVideoEncodeDelay,
		interactive: interactiveSet(DefaultInteractiveGovernors),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.encodeDelay <= 0 {
		return nil, fmt.Errorf("new power HAL for %s: video encode delay must be > 0", chip.Name())
	}
	if h.metrics == nil {
		h.metrics = NewMetrics()
	}
	h.encode.curHintID = DefaultVideoEncodeHintID
	h.encode.newHintID = DefaultVideoEncodeHintID
	return h, nil
}

func (h *HAL) Chip() Chip { return h.chip }

func (h *HAL) Metrics() *Metrics { return h.metrics }

// PowerHint is the power_hint_override entry point.
func (h *HAL) PowerHint(req Request) Result {
	result, outcome := h.powerHint(req)
	h.metrics.hint(h.chip.Name(), req.Kind, outcome)
	return result
}

func (h *HAL) powerHint(req Request) (Result, outcome) {
	switch req.Kind {
	case HintInteraction:
		return h.interaction(req)
	case HintLaunch:
		return h.launch()
	case HintVideoEncode:
		return h.videoEncode(req)
	}
	if h.chip.Swallows(req.Kind) {
		logging.Verbose("%s: ignoring %s hint", h.chip.Name(), req.Kind)
		return Handled, outcomeIgnored
	}
	return NotHandled, outcomeUnhandled
}

// SetInteractive is the set_interactive_override entry point.
func (h *HAL) SetInteractive(on bool) Result {
	result := h.setInteractive(on)
	h.metrics.display(h.chip.Name(), on, result)
	return result
}

// Close cancels a pending delayed encode enable and undoes an applied one,
// so a HAL replacing this one starts from an idle runtime. Later encode
// starts are dropped with an error.
func (h *HAL) Close() error {
	s := &h.encode
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.shouldEnable = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.enabled {
		logging.Debug("%s: undoing video encode hint %#x on close", h.chip.Name(), s.curHintID)
		h.platform.Runtime.Undo(s.curHintID)
		s.enabled = false
		h.metrics.encode(h.chip.Name(), false)
	}
	return nil
}

// governor probes the chip's cores in order. Every caller logs the same
// line on failure, so it happens here.
func (h *HAL) governor() (string, error) {
	governor, err := queryGovernor(h.platform.Governor, h.chip.GovernorCores())
	if err != nil {
		logging.Error("Can't obtain scaling governor: %v", err)
		return "", err
	}
	return governor, nil
}

func (h *HAL) isInteractive(governor string) bool {
	return h.interactive[governor]
}

// chipVariant classifies the SoC once per process. A failed SoC id query is
// remembered as the default variant, as the hardware cannot change later.
func (h *HAL) chipVariant() Variant {
	h.variantOnce.Do(func() {
		classifier, ok := h.chip.(Classifier)
		if !ok {
			return
		}
		if h.platform.Chip == nil {
			logging.Warn("%s: no SoC id source, using default tables", h.chip.Name())
			return
		}
		socID, err := h.platform.Chip.SocID()
		if err != nil {
			logging.Error("%s: failed to read SoC id: %v", h.chip.Name(), err)
			return
		}
		h.variant = classifier.Variant(socID)
		logging.Info("%s: SoC id %d classified as %s", h.chip.Name(), socID, h.variant)
	})
	return h.variant
}
