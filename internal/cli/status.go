package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"windlass/internal/app"
	"windlass/internal/types"
)

type statusOptions struct {
	Profile string
	JSON    bool
}

func newStatusCommand() *cobra.Command {
	opts := statusOptions{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Resolve the launch readiness state for a game profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "Game profile path")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the state as JSON")

	_ = viper.BindPFlag("profile", cmd.Flags().Lookup("profile"))

	return cmd
}

func runStatus(cmd *cobra.Command, opts statusOptions) error {
	profile := resolveString(cmd, opts.Profile, "profile", "profile")

	service := app.NewService(runtimeEnvironment(), os.LookupEnv)
	result, err := service.Status(cmd.Context(), profile, func(update types.StatusUpdate) {
		event := log.Debug().Str("stage", string(update.Stage))
		if update.Locale != "" {
			event = event.Str("locale", string(update.Locale))
		}
		event.Msg("checking")
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		encoded, err := json.MarshalIndent(result.State, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
	} else {
		fmt.Println(string(result.State.Kind))
	}
	for _, diagnostic := range result.MirrorDiagnostics {
		fmt.Fprintf(os.Stderr, "mirror: %s\n", diagnostic)
	}
	return nil
}
