package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"windlass/internal/shared"
)

func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the detected runtime environment and launcher paths",
		RunE: func(_ *cobra.Command, _ []string) error {
			env := runtimeEnvironment()
			fmt.Printf("mode: %s\n", env.Mode)
			if env.CompatDataPath != "" {
				fmt.Printf("compat data: %s\n", env.CompatDataPath)
			}
			fmt.Printf("launcher dir: %s\n", shared.LauncherDir(os.LookupEnv))
			fmt.Printf("cache dir: %s\n", shared.CacheDir(os.LookupEnv))
			return nil
		},
	}
}
