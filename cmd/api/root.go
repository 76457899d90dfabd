package main

import (
	"animal-training/internal/platform/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var configFile string

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "api",
		Short:         "Animal training API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (YAML)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewHealthcheckCmd())

	return cmd
}

// loadConfig aplica .env, --config, entorno y los flags del comando.
func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	return config.Load(config.LoadOptions{
		File:     configFile,
		EnvFiles: []string{".env"},
		Flags:    flags,
	})
}
