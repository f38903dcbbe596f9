package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLocationsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List configured restaurants, locations, and institution ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, r := range cfg.Restaurants {
				if len(r.Locations) == 0 {
					fmt.Fprintf(w, "%s  %s\n", r.Name, iidOrUnset(r.ADPIID))
					continue
				}
				fmt.Fprintln(w, r.Name)
				for _, loc := range r.Locations {
					fmt.Fprintf(w, "  %s  %s\n", loc.Name, iidOrUnset(loc.ADPIID))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath, "deployment config file")

	return cmd
}

func iidOrUnset(iid string) string {
	if iid == "" {
		return "(no ADP IID)"
	}
	return iid
}
