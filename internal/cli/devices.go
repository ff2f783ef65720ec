package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/youruser/yeardots/internal/devices"
)

func newDevicesCmd() *cobra.Command {
	var opt devices.FilterOptions
	cmd := &cobra.Command{
		Use:   "devices [words...]",
		Short: "List the device presets usable with --device",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := devices.All()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				opt.FreeWords = strings.Join(args, " ")
			}
			out := devices.Filter(all, opt)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SLUG\tNAME\tPLATFORM\tSIZE")
			for _, d := range out {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%dx%d\n", d.Slug, d.Name, d.Platform, d.Width, d.Height)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&opt.Platform, "platform", "", "only ios or android presets")
	return cmd
}
