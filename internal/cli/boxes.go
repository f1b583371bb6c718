package cli

import (
	"github.com/guttosm/parcel-service/internal/domain/dto"
	"github.com/spf13/cobra"
)

var boxesCmd = &cobra.Command{
	Use:   "boxes",
	Short: "List the box catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		boxes, err := components.Catalog.List(cmd.Context(), cfg.Catalog.Limit)
		if err != nil {
			return err
		}
		return writeOutput(cmd, dto.BoxesResponse{Boxes: boxes, Count: len(boxes)})
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List fulfillment options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeOutput(cmd, dto.OptionsResponse{Options: components.Shipping.FulfillmentOptions()})
	},
}

func init() {
	rootCmd.AddCommand(boxesCmd)
	rootCmd.AddCommand(optionsCmd)
}
