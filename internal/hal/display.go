package hal

import (
	"strconv"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/logging"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/sysfs"
)

// minFreqCores are tried in order when writing scaling_min_freq; the first
// online core's policy takes the value.
var minFreqCores = []int{0, 1, 2, 3}

func (h *HAL) setInteractive(on bool) Result {
	governor, err := h.governor()
	if err != nil {
		return NotHandled
	}
	if !h.isInteractive(governor) {
		logging.Verbose("%s: governor %s ignores display state", h.chip.Name(), governor)
		return Handled
	}

	action := h.chip.Display(h.chipVariant())
	if !on {
		if action.MinFreqOffKHz > 0 {
			h.writeMinFreq(action.MinFreqOffKHz)
		}
		logging.Debug("%s: display off with %s", h.chip.Name(), action.Off)
		h.platform.Runtime.Perform(DisplayStateHintID, action.Off)
		return Handled
	}

	if action.MinFreqOnKHz > 0 {
		h.writeMinFreq(action.MinFreqOnKHz)
	}
	logging.Debug("%s: display on", h.chip.Name())
	h.platform.Runtime.Undo(DisplayStateHintID)
	return Handled
}

// writeMinFreq stores khz through the first per-core node that accepts it.
// Failure is logged; display tuning goes ahead regardless.
func (h *HAL) writeMinFreq(khz int) {
	if h.platform.Sysfs == nil {
		logging.Warn("%s: no sysfs writer, skipping scaling_min_freq", h.chip.Name())
		return
	}
	value := strconv.Itoa(khz)
	for _, cpu := range minFreqCores {
		path := sysfs.ScalingMinFreqPath(sysfs.DefaultRoot, cpu)
		err := h.platform.Sysfs.Write(path, value)
		if err == nil {
			return
		}
		logging.Warn("Failed to write %s: %v", path, err)
	}
	logging.Error("Failed to write to %s", sysfs.Paths_CPUFreq_Min)
}
