package cli

import (
	"github.com/guttosm/parcel-service/internal/domain/dto"
	"github.com/spf13/cobra"
)

var ratesCmd = &cobra.Command{
	Use:   "rates [file]",
	Short: "Quote carrier rates for a cart",
	Long: `Packs the cart, builds a carrier shipment request and prints the
carrier rates sorted by price. A shipping address is required. Without a
configured carrier no rates are returned.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRates,
}

func init() {
	addInputFlag(ratesCmd)
	rootCmd.AddCommand(ratesCmd)
}

func runRates(cmd *cobra.Command, args []string) error {
	var req dto.ShippingRatesRequest
	if err := decodeInput(cmd, args, &req); err != nil {
		return err
	}
	cart, err := req.ToCart()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	rates, err := components.Shipping.GetRates(ctx, cart)
	if err != nil {
		return err
	}
	return writeOutput(cmd, dto.NewRatesResponse(cart.ID, rates))
}
