package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sakif/property-board/internal/model"
	"github.com/sakif/property-board/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a property listing",
	Long: `Create a new listing. All three fields are required; the server
rejects empty titles/locations and negative prices.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		location, _ := cmd.Flags().GetString("location")

		draft := model.PropertyDraft{
			Title:    title,
			Price:    priceArg(cmd, "price"),
			Location: location,
		}

		created, err := apiClient(cmd).Create(cmd.Context(), draft)
		if err != nil {
			return fmt.Errorf("failed to add property: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Added %s (%s)", created.Title, created.ID)))
		fmt.Print(ui.FormatProperty(*created))
		return nil
	},
}

func init() {
	addCmd.Flags().String("title", "", "listing title")
	addCmd.Flags().Float64("price", 0, "listing price")
	addCmd.Flags().String("location", "", "listing location")
	rootCmd.AddCommand(addCmd)
}
