// Package host binds the power HAL to its collaborators. Builds tagged
// qcomhost link against the helpers of the vendor power HAL that loads
// PowerPulse; other builds read sysfs directly and only log tuning actions.
package host

import (
	"fmt"
	"strings"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/config"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/hal"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/logging"
)

// Open builds the HAL described by cfg. opts are applied after the ones
// derived from cfg.
func Open(cfg config.Config, opts ...hal.Option) (*hal.HAL, error) {
	platform := newPlatform(cfg)
	chip, err := ResolveChip(cfg.Chip, platform.Chip)
	if err != nil {
		return nil, err
	}
	logging.Info("Using %s overrides", chip.Name())

	return hal.New(chip, platform, append([]hal.Option{
		hal.WithVideoEncodeDelay(cfg.Encode.Delay.Duration),
		hal.WithInteractiveGovernors(cfg.Governor.Interactive...),
	}, opts...)...)
}

// ResolveChip looks a family up by name, or detects it from the SoC id
// when name is "auto".
func ResolveChip(name string, ids hal.ChipIDReader) (hal.Chip, error) {
	if !strings.EqualFold(strings.TrimSpace(name), "auto") {
		return hal.LookupChip(name)
	}
	if ids == nil {
		return nil, fmt.Errorf("detect chip: no SoC id source")
	}
	socID, err := ids.SocID()
	if err != nil {
		return nil, fmt.Errorf("detect chip: %w", err)
	}
	chip, err := hal.DetectChip(socID)
	if err != nil {
		return nil, fmt.Errorf("detect chip: %w", err)
	}
	return chip, nil
}

// SocID reports the SoC id as seen by the platform cfg selects.
func SocID(cfg config.Config) (int, error) {
	return newPlatform(cfg).Chip.SocID()
}
