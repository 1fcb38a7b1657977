//go:build !qcomhost

package host

import (
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/config"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/hal"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/sysfs"
)

func newPlatform(cfg config.Config) hal.Platform {
	fs := sysfs.New(cfg.SysfsRoot)
	return hal.Platform{
		Chip:     fs,
		Governor: fs,
		Sysfs:    fs,
		Runtime:  hal.LogRuntime{},
	}
}
