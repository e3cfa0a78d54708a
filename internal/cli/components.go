package cli

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"windlass/internal/app"
	"windlass/internal/types"
)

type componentsOptions struct {
	Catalog string
	Kind    string
}

func newComponentsCommand() *cobra.Command {
	opts := componentsOptions{}
	cmd := &cobra.Command{
		Use:   "components",
		Short: "List runner and DXVK groups from the components catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runComponents(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "Components catalog directory")
	cmd.Flags().StringVar(&opts.Kind, "kind", "wine", "Component kind (wine or dxvk)")

	_ = viper.BindPFlag("catalog", cmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("kind", cmd.Flags().Lookup("kind"))

	return cmd
}

func runComponents(cmd *cobra.Command, opts componentsOptions) error {
	catalog := resolveString(cmd, opts.Catalog, "catalog", "catalog")
	kind, err := componentKind(resolveString(cmd, opts.Kind, "kind", "kind"))
	if err != nil {
		return err
	}

	service := app.NewService(runtimeEnvironment(), os.LookupEnv)
	groups, err := service.Registry.Groups(catalog, kind)
	if err != nil {
		return err
	}
	printGroups(groups)
	return nil
}

func componentKind(value string) (types.ComponentKind, error) {
	switch types.ComponentKind(value) {
	case types.ComponentKindWine:
		return types.ComponentKindWine, nil
	case types.ComponentKindDxvk:
		return types.ComponentKindDxvk, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("kind must be wine or dxvk")
	}
}

func printGroups(groups []types.ComponentGroup) {
	for _, group := range groups {
		marker := ""
		if group.Managed {
			marker = " (managed)"
		}
		fmt.Printf("%s - %s%s\n", group.Name, group.Title, marker)
		for _, version := range group.Versions {
			fmt.Printf("  %s - %s\n", version.Name, version.Title)
		}
	}
}
