package hal

import (
	"time"
)

// ChipIDReader reports the numeric SoC id, stable for the process lifetime.
type ChipIDReader interface {
	SocID() (int, error)
}

// GovernorReader reports the scaling governor of one logical CPU. It fails
// when that CPU is offline.
type GovernorReader interface {
	Governor(cpu int) (string, error)
}

// SysfsWriter writes a value to a kernel node.
type SysfsWriter interface {
	Write(path, value string) error
}

// Runtime is the tuning engine the tables are handed to. Perform and Undo
// are keyed by hint id; undoing an id that is not active is harmless.
type Runtime interface {
	Interaction(duration time.Duration, table Table)
	Perform(hintID int32, table Table)
	Undo(hintID int32)
}

// Platform bundles the collaborators provided by the host.
type Platform struct {
	Chip     ChipIDReader
	Governor GovernorReader
	Sysfs    SysfsWriter
	Runtime  Runtime
}
