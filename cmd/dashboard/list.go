package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sakif/property-board/internal/client"
	"github.com/sakif/property-board/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List properties once",
	Long:  `Fetch the collection a single time and print it with the KPI strip.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api := apiClient(cmd)

		snapshot, err := api.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list properties: %w", err)
		}

		fmt.Print(ui.FormatDashboard(client.State{Snapshot: snapshot}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
