package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sakif/property-board/internal/ui"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a property listing",
	Long:  `Delete a listing permanently. Its id is never valid again.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		force, _ := cmd.Flags().GetBool("force")

		api := apiClient(cmd)
		ctx := cmd.Context()

		property, err := api.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch property: %w", err)
		}

		if !force {
			fmt.Printf("Delete %q in %s (%s)? [y/N] ", property.Title, property.Location, property.ID)
			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := api.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete property: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Deleted %s", id)))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
