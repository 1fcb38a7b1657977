package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/hal"
	"github.com/AndroidPlusProject/powerpulse-qcom/internal/host"
)

func newChipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chips",
		Short: "List supported chip families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVIDEO ENCODE\tINTERACTION\tGOVERNOR CORES")
			for _, c := range hal.Chips() {
				_, _, interaction := c.InteractionTables()
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\n",
					c.Name(),
					c.VideoEncode(),
					interaction,
					strings.Trim(fmt.Sprint(c.GovernorCores()), "[]"),
				)
			}
			return w.Flush()
		},
	}
}

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables [chip...]",
		Short: "Dump the resource tables of chip families as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			chips := hal.Chips()
			if len(args) > 0 {
				chips = chips[:0:0]
				for _, name := range args {
					c, err := hal.LookupChip(name)
					if err != nil {
						return err
					}
					chips = append(chips, c)
				}
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			for _, c := range chips {
				if err := enc.Encode(hal.DescribeChip(c)); err != nil {
					return err
				}
			}
			return enc.Close()
		},
	}
}

func newChipCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chip",
		Short: "Detect the chip family from the SoC id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			socID, err := host.SocID(cfg)
			if err != nil {
				return err
			}
			chip, err := hal.DetectChip(socID)
			if err != nil {
				return fmt.Errorf("soc id %d: %w", socID, err)
			}

			variant := hal.VariantDefault
			if cl, ok := chip.(hal.Classifier); ok {
				variant = cl.Variant(socID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "soc_id=%d chip=%s variant=%s\n", socID, chip.Name(), variant)
			return nil
		},
	}
}
