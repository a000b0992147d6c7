package main

import (
	"os"

	"github.com/spf13/cobra"

	"skylink/internal/interfaces/cli/admin"
	"skylink/internal/interfaces/cli/auth"
	"skylink/internal/interfaces/cli/cmdutil"
	"skylink/internal/interfaces/cli/customer"
	"skylink/internal/interfaces/cli/server"
)

func main() {
	opts := &cmdutil.Options{}

	rootCmd := &cobra.Command{
		Use:          "skylink",
		Short:        "SkyLink - telecom subscription portal",
		Long:         `SkyLink serves the customer and admin dashboards over HTTP and from the terminal.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(server.NewCommand(opts))
	rootCmd.AddCommand(auth.NewCommands(opts)...)
	rootCmd.AddCommand(
		customer.NewCommand(opts),
		admin.NewCommand(opts),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
