package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/hal"
)

func newHintCmd(opts *globalOptions) *cobra.Command {
	var (
		settle time.Duration
		repeat int
	)
	cmd := &cobra.Command{
		Use:   "hint <kind> [duration-ms|metadata]",
		Short: "Send a power hint",
		Long: `Send a power hint to the chip overrides.

Interaction and launch hints take an optional duration in milliseconds.
Video encode and decode hints take a metadata blob such as
"state=1;hint_id=0x104".`,
		Example: `  powerpulse-qcom hint interaction 1500
  powerpulse-qcom hint video_encode "state=1" --settle 3s`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseHint(args)
			if err != nil {
				return err
			}
			if repeat < 1 {
				return fmt.Errorf("--repeat must be at least 1")
			}
			return opts.withHAL(func(h *hal.HAL) error {
				for i := 0; i < repeat; i++ {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", req.Kind, h.PowerHint(req))
				}
				if settle > 0 {
					time.Sleep(settle)
				}
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&settle, "settle", 0, "wait this long before exiting, for delayed actions")
	cmd.Flags().IntVar(&repeat, "repeat", 1, "send the hint this many times")
	return cmd
}

func parseHint(args []string) (hal.Request, error) {
	kind, err := hal.ParseKind(args[0])
	if err != nil {
		return hal.Request{}, err
	}
	if len(args) == 1 {
		return hal.Hint(kind), nil
	}

	switch kind {
	case hal.HintInteraction, hal.HintLaunch:
		ms, err := strconv.ParseInt(args[1], 10, 32)
		if err != nil {
			return hal.Request{}, fmt.Errorf("%s duration: %w", kind, err)
		}
		return hal.HintWithDuration(kind, int32(ms)), nil
	case hal.HintVideoEncode, hal.HintVideoDecode:
		return hal.HintWithMetadata(kind, args[1]), nil
	}
	return hal.Request{}, fmt.Errorf("%s hints take no argument", kind)
}
