package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the recognized topics in match order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-12s  %-20s  %-8s  %-8s  %s\n",
			"Keyword", "Name", "Advanced", "Refined", "MCQs")
		fmt.Fprintln(out, strings.Repeat("─", 64))

		for _, t := range cat.Topics() {
			fmt.Fprintf(out, "%-12s  %-20s  %-8s  %-8s  %d\n",
				t.Keyword, t.Name, yesNo(t.Advanced != ""), yesNo(t.Refined != ""), len(t.MCQs))
		}

		fmt.Fprintf(out, "\n%d topics\n", cat.Len())
		return nil
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
