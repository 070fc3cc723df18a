package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanri-dev/kanri/internal/terminal"
)

var zenLines = [...]string{
	"Projects should be simple.",
	"Each command does one thing well.",
	"Configuration is explicit.",
	"Sensible defaults guide the way.",
	"The shell is a friend.",
	"Templates accelerate your workflow.",
	"Cross-platform by design.",
	"Clear messages beat surprises.",
	"Your editor is respected.",
	"Enjoy your work.",
}

var zenCmd = &cobra.Command{
	Use:    "zen",
	Short:  "Print the zen of kanri",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		terminal.PrintTitle("THE ZEN OF KANRI")
		for _, line := range zenLines {
			fmt.Printf(" %s %s\n", terminal.Dim("*"), line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(zenCmd)
}
