package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sakif/property-board/internal/client"
	"github.com/sakif/property-board/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the collection live",
	Long: `Poll the server on an interval and re-render the dashboard on every
snapshot change. A failed poll keeps the last good data on screen with a
warning banner. Stop with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// signal.NotifyContext gives us a ctx that is cancelled on Ctrl+C.
		// Cancelling it is the poller's single stop mechanism, so shutdown
		// can't leave an orphaned refresh loop behind.
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		poller := client.NewPoller(apiClient(cmd), pollInterval(cmd), func(state client.State) {
			if state.Loading {
				return // render settled states only
			}
			// ANSI clear-screen + home, then the fresh dashboard.
			fmt.Print("\033[2J\033[H")
			fmt.Print(ui.FormatDashboard(state))
			fmt.Println()
			fmt.Print("Ctrl+C to quit")
		})

		poller.Run(ctx) // blocks until the signal arrives
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
