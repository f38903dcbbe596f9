// Package commands wires the adpgen CLI.
package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/adpgen-dev/adpgen/internal/buildinfo"
	"github.com/adpgen-dev/adpgen/internal/config"
)

// defaultConfigPath is where the deployment config is looked for when
// --config is not given.
const defaultConfigPath = "adpgen.yaml"

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "adpgen",
		Short:   "Build ADP generic payroll imports from Square timesheets and tip sheets",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newProcessCommand())
	rootCmd.AddCommand(newLocationsCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

// loadConfig reads the deployment config. Only the implicit default
// path falls back to the built-in defaults when missing; a path the
// user asked for must exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if path == defaultConfigPath && errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}
