package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCommand returns the `version` subcommand.
func NewCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			text := Full()
			if short {
				text = Short()
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")

	return cmd
}
