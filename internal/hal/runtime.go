package hal

import (
	"time"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/logging"
)

// LogRuntime is a dry-run Runtime that only logs what would be applied.
// It stands in for perflock where no tuning engine is linked.
type LogRuntime struct{}

func (LogRuntime) Interaction(duration time.Duration, table Table) {
	logging.Info("interaction %v: %s", duration, table)
}

func (LogRuntime) Perform(hintID int32, table Table) {
	logging.Info("perform hint %#x: %s", hintID, table)
}

func (LogRuntime) Undo(hintID int32) {
	logging.Info("undo hint %#x", hintID)
}
