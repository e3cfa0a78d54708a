package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"windlass/internal/app"
)

type downloadedOptions struct {
	Catalog string
	Kind    string
	Builds  string
}

func newDownloadedCommand() *cobra.Command {
	opts := downloadedOptions{}
	cmd := &cobra.Command{
		Use:   "downloaded",
		Short: "List catalog versions already present in the builds folder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDownloaded(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "Components catalog directory")
	cmd.Flags().StringVar(&opts.Kind, "kind", "wine", "Component kind (wine or dxvk)")
	cmd.Flags().StringVar(&opts.Builds, "builds", "", "Local builds folder")

	_ = viper.BindPFlag("catalog", cmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("kind", cmd.Flags().Lookup("kind"))
	_ = viper.BindPFlag("builds", cmd.Flags().Lookup("builds"))

	return cmd
}

func runDownloaded(cmd *cobra.Command, opts downloadedOptions) error {
	catalog := resolveString(cmd, opts.Catalog, "catalog", "catalog")
	builds := resolveString(cmd, opts.Builds, "builds", "builds")
	kind, err := componentKind(resolveString(cmd, opts.Kind, "kind", "kind"))
	if err != nil {
		return err
	}

	service := app.NewService(runtimeEnvironment(), os.LookupEnv)
	groups, err := service.Registry.Downloaded(catalog, kind, builds)
	if err != nil {
		return err
	}
	printGroups(groups)
	return nil
}
