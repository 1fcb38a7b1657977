package main

import "C"

import (
	"sync"
	"time"
	"unsafe"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/cli"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/config"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/hal"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/host"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	handle   host.Handle
	bootLock sync.Mutex
)

// PowerPulse_Init loads the HAL once. A failed load is retried on the next
// call, so a manifest fixed later still takes effect.
//
//export PowerPulse_Init
func PowerPulse_Init() {
	bootLock.Lock()
	defer bootLock.Unlock()
	if handle.Loaded() {
		return
	}
	startTime := time.Now()

	logging.Info("Need to boot PowerPulse first, just a blip...")
	if err := handle.Reload(config.Manifests); err != nil {
		logging.Error("PowerPulse failed to init, retrying on the next call: %v", err)
		return
	}

	deltaTime := time.Since(startTime).Milliseconds()
	logging.Info("PowerPulse finished init in %dms", deltaTime)
}

//export PowerPulse_ReloadConfig
func PowerPulse_ReloadConfig() {
	if err := handle.Reload(config.Manifests); err != nil {
		logging.Error("Error reloading config, keeping the previous one: %v", err)
	}
}

// withPower runs fn against the current HAL. A missing HAL or a panic
// reports the call as not handled so the host falls back to its defaults.
func withPower(fn func(*hal.HAL) hal.Result) (result C.int) {
	PowerPulse_Init()
	defer func() {
		if r := recover(); r != nil {
			logging.Error("Recovered from panic: %v", r)
			result = C.int(hal.NotHandled)
		}
	}()
	return C.int(handle.Do(fn))
}

// PowerPulse_SetPowerHint takes the raw power_hint data pointer: an int*
// duration for interaction and launch, a char* metadata string for video
// encode and decode, unused otherwise.
//
//export PowerPulse_SetPowerHint
func PowerPulse_SetPowerHint(hint C.int, data unsafe.Pointer) C.int {
	kind := hal.Kind(hint)
	req := hal.Hint(kind)
	if data != nil {
		switch kind {
		case hal.HintInteraction, hal.HintLaunch:
			req = hal.HintWithDuration(kind, int32(*(*C.int)(data)))
		case hal.HintVideoEncode, hal.HintVideoDecode:
			req = hal.HintWithMetadata(kind, C.GoString((*C.char)(data)))
		}
	}
	logging.Verbose("PowerHint: %s", kind)
	return withPower(func(h *hal.HAL) hal.Result { return h.PowerHint(req) })
}

//export PowerPulse_SetPowerHintMetadata
func PowerPulse_SetPowerHintMetadata(hint C.int, metadata *C.char) C.int {
	req := hal.Hint(hal.Kind(hint))
	if metadata != nil {
		req.Metadata = C.GoString(metadata)
	}
	return withPower(func(h *hal.HAL) hal.Result { return h.PowerHint(req) })
}

//export PowerPulse_SetInteractive
func PowerPulse_SetInteractive(on C.int) C.int {
	logging.Verbose("Interactive: %t", on != 0)
	return withPower(func(h *hal.HAL) hal.Result { return h.SetInteractive(on != 0) })
}

// PowerPulse_DumpMetrics writes the metrics textfile, to path when given or
// to the configured metrics.textfile otherwise.
//
//export PowerPulse_DumpMetrics
func PowerPulse_DumpMetrics(path *C.char) C.int {
	PowerPulse_Init()
	target := handle.Textfile()
	if path != nil {
		target = C.GoString(path)
	}
	if target == "" {
		logging.Warn("No metrics textfile configured")
		return C.int(hal.NotHandled)
	}
	return withPower(func(h *hal.HAL) hal.Result {
		if err := h.Metrics().WriteTextfile(target); err != nil {
			logging.Error("Error writing metrics to %s: %v", target, err)
			return hal.NotHandled
		}
		return hal.Handled
	})
}

func main() {
	cli.Execute(version)
}
