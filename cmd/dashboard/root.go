package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sakif/property-board/internal/client"
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Property listings dashboard",
	Long: `dashboard is the terminal client for the property-board API.

It can watch the collection live (polling every 30s by default),
list it once, and add, edit, or remove listings.`,
	SilenceUsage: true,
	// With no subcommand, behave like `dashboard watch` — the live view is
	// what the tool exists for.
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCmd.RunE(cmd, args)
	},
}

// Execute runs the root command. Cobra prints the error itself; main only
// needs the exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	serverDefault := os.Getenv("PROPERTY_SERVER")
	if serverDefault == "" {
		serverDefault = "http://localhost:8080"
	}

	rootCmd.PersistentFlags().String("server", serverDefault, "base URL of the property-board API")
	rootCmd.PersistentFlags().Duration("interval", client.DefaultPollInterval, "poll interval for watch mode")
}

// apiClient builds the API client from the persistent --server flag.
func apiClient(cmd *cobra.Command) *client.Client {
	serverURL, _ := cmd.Flags().GetString("server")
	return client.New(serverURL)
}

// pollInterval reads the persistent --interval flag.
func pollInterval(cmd *cobra.Command) time.Duration {
	interval, _ := cmd.Flags().GetDuration("interval")
	return interval
}

// priceArg converts a price flag value into the draft's pointer form,
// keeping "flag not given" distinguishable from an explicit zero.
func priceArg(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil
	}
	return &v
}
