package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resolveString prefers an explicitly set flag, then the viper key (env
// or config file), then the flag's default.
func resolveString(cmd *cobra.Command, flagValue, viperKey, flagName string) string {
	if cmd.Flags().Changed(flagName) {
		return flagValue
	}
	if viper.IsSet(viperKey) {
		return viper.GetString(viperKey)
	}
	return flagValue
}
