// Package cmd wires the command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcpdict/mcpdict-go/cmd/serve"
)

// Execute runs the root command.
func Execute() error {
	return RootCommand().Execute()
}

// RootCommand creates and returns the root command
func RootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mcpdict",
		Short: "Read-only lookup API over the MCPDict character reading dictionary",
	}

	if err := setupFlags(rootCmd); err != nil {
		cobra.CheckErr(err)
	}

	rootCmd.AddCommand(serve.Command())
	return rootCmd
}

// setupFlags defines global flags and binds them into viper so command
// line arguments take precedence over config.yaml and defaults.
func setupFlags(rootCmd *cobra.Command) error {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("debug", "d", false, "Enable debug output")
	flags.String("host", "0.0.0.0", "Address to listen on")
	flags.StringP("port", "p", "8000", "Port to listen on")
	flags.String("database", "mcpdict.db", "Path to the dictionary store")
	flags.Int("max-chars", 512, "Maximum distinct characters per lookup")

	bindings := map[string]string{
		"debug":           "debug",
		"webserver.host":  "host",
		"webserver.port":  "port",
		"database.path":   "database",
		"lookup.maxchars": "max-chars",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("error binding flag %q: %w", flag, err)
		}
	}
	return nil
}
