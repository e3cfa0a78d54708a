package cli

import (
	"os"

	"github.com/spf13/cobra"

	"windlass/internal/adapters"
)

func newDiscoverCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Discover Steam-managed Proton builds",
		RunE: func(_ *cobra.Command, _ []string) error {
			env := runtimeEnvironment()
			locator := adapters.NewSteamLocatorAdapter(env, os.LookupEnv)
			discovery := adapters.NewProtonDiscoveryAdapter(locator)
			groups, err := discovery.Discover()
			if err != nil {
				return err
			}
			printGroups(groups)
			return nil
		},
	}
}
