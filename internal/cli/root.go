// Package cli implements the powerpulse-qcom command line, which drives the
// chip overrides outside of a host power HAL.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "powerpulse-qcom",
		Short: "Qualcomm power hint overrides",
		Long: `powerpulse-qcom translates Android power hints into perflock resource
tables for msm8916, msm8952, msm8992 and sdm660 class SoCs.

Outside of a vendor power HAL the tables are logged instead of applied.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addGlobalFlags(root.PersistentFlags(), opts)

	root.AddCommand(
		newHintCmd(opts),
		newInteractiveCmd(opts),
		newTablesCmd(),
		newChipsCmd(),
		newChipCmd(opts),
	)
	return root
}

// Execute runs the root command. Called from main.
func Execute(version string) {
	root := newRootCmd()
	root.Version = version

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
