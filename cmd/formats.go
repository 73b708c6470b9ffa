package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/imagify/internal/encoder"
	"github.com/AnyUserName/imagify/internal/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported target formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		reg := encoder.NewRegistry()

		fmt.Fprintf(out, "  %-6s %-8s %-6s %s\n", "FORMAT", "ENCODER", "ALPHA", "NOTES")
		for _, f := range format.All() {
			spec, _ := format.Lookup(f)
			note := ""
			if spec.Flatten {
				note = "transparency flattened onto white, transparent palette images saved as PNG fallback"
			}
			if f == format.JPEG {
				note += "; alias jpg"
			}
			if reg.Get(f) == nil {
				note = "unavailable"
			}
			fmt.Fprintf(out, "  %-6s %-8s %-6v %s\n", f, spec.Encoder, spec.Alpha, note)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
