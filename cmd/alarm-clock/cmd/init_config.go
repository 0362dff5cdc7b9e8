package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
)

// errConfigExists is returned when init-config would overwrite a file.
var errConfigExists = errors.New("settings file already exists, use --force to overwrite")

// newInitConfigCommand returns the `init-config` subcommand.
func newInitConfigCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write default settings to a YAML file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigFilename
			if len(args) > 0 {
				path = args[0]
			}

			if err := writeDefaultConfig(path, force); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}

// writeDefaultConfig saves config.Default to path.
func writeDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, errConfigExists)
		}
	}

	return config.Save(path, config.Default())
}
