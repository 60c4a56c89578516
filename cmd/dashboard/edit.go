package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sakif/property-board/internal/client"
	"github.com/sakif/property-board/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a property listing",
	Long: `Update a listing through an edit session: the current record is
fetched and pre-fills the draft, the given flags change individual fields,
and the result is saved as a full replacement. Fields without a flag keep
their current value (because the draft started as a copy of the record, not
because the server supports partial updates — it doesn't).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api := apiClient(cmd)
		ctx := cmd.Context()

		current, err := api.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch property: %w", err)
		}

		session := client.NewEditSession()
		session.StartEdit(*current)

		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			if err := session.SetTitle(title); err != nil {
				return err
			}
		}
		if price := priceArg(cmd, "price"); price != nil {
			if err := session.SetPrice(*price); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("location") {
			location, _ := cmd.Flags().GetString("location")
			if err := session.SetLocation(location); err != nil {
				return err
			}
		}

		updated, err := session.Save(ctx, api)
		if err != nil {
			// The session keeps its draft, but a one-shot CLI invocation has
			// no way to retry it — report and let the user run edit again.
			return fmt.Errorf("failed to save edit: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Updated %s", updated.ID)))
		fmt.Print(ui.FormatProperty(*updated))
		return nil
	},
}

func init() {
	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().Float64("price", 0, "new price")
	editCmd.Flags().String("location", "", "new location")
	rootCmd.AddCommand(editCmd)
}
