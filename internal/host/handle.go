package host

import (
	"fmt"
	"sync"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/config"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/hal"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/logging"
)

// Handle owns the HAL behind the host entry points across manifest reloads.
// The zero value has no HAL and reports every call as not handled.
type Handle struct {
	mu       sync.RWMutex
	power    *hal.HAL
	textfile string
}

// Reload loads the first manifest found in paths and swaps in a HAL built
// from it. The previous HAL is closed before the new one serves a call, so
// any encode table it applied is undone, and its metrics carry over. On
// error the previous HAL stays in place.
func (h *Handle) Reload(paths []string) error {
	cfg, path, err := config.Load(paths)
	if err != nil {
		return err
	}
	if path != "" {
		logging.Info("Found manifest at %s", path)
	}
	logging.SetDebug(cfg.Log.Debug)
	logging.SetVerbose(cfg.Log.Verbose)

	h.mu.Lock()
	defer h.mu.Unlock()

	var opts []hal.Option
	if h.power != nil {
		opts = append(opts, hal.WithMetrics(h.power.Metrics()))
	}
	next, err := Open(cfg, opts...)
	if err != nil {
		return fmt.Errorf("open power HAL: %w", err)
	}
	if h.power != nil {
		h.power.Close()
	}
	h.power = next
	h.textfile = cfg.Metrics.Textfile
	return nil
}

// Loaded reports whether a HAL is in place.
func (h *Handle) Loaded() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.power != nil
}

// Do runs fn against the current HAL, or returns NotHandled without one.
func (h *Handle) Do(fn func(*hal.HAL) hal.Result) hal.Result {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.power == nil {
		return hal.NotHandled
	}
	return fn(h.power)
}

// Textfile is the metrics.textfile of the loaded manifest.
func (h *Handle) Textfile() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.textfile
}
