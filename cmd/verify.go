package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/imagify/internal/report"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <report.json>",
	Short: "Check that the files recorded in a conversion report are intact",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	r, err := report.ReadJSON(args[0])
	if err != nil {
		return err
	}

	problems := report.Verify(r)
	if len(problems) == 0 {
		fmt.Fprintln(out, "  ✓ Report is valid")
		fmt.Fprintf(out, "  ✓ %d items: %d saved, %d fallback, %d failed, all files present\n",
			r.Stats.Total, r.Stats.Saved, r.Stats.Fallback, r.Stats.Failed)
		return nil
	}

	fmt.Fprintf(out, "  ✗ Report has %d problem(s):\n", len(problems))
	for _, p := range problems {
		fmt.Fprintf(out, "    • %s\n", p)
	}
	return fmt.Errorf("verification failed with %d problems", len(problems))
}
