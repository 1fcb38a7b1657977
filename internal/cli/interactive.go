package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/hal"
)

func newInteractiveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "interactive <on|off>",
		Short:     "Switch display interactivity",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := parseSwitch(args[0])
			if err != nil {
				return err
			}
			return opts.withHAL(func(h *hal.HAL) error {
				fmt.Fprintf(cmd.OutOrStdout(), "interactive %s: %s\n", args[0], h.SetInteractive(on))
				return nil
			})
		},
	}
}

func parseSwitch(arg string) (bool, error) {
	switch arg {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	on, err := strconv.ParseBool(arg)
	if err != nil {
		return false, fmt.Errorf("expected on or off, got %q", arg)
	}
	return on, nil
}
