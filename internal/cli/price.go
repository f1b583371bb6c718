package cli

import (
	"github.com/guttosm/parcel-service/internal/domain/dto"
	"github.com/spf13/cobra"
)

var priceOption string

var priceCmd = &cobra.Command{
	Use:   "price [file]",
	Short: "Price a fulfillment option for a cart",
	Long: `Prices a fulfillment option from the cheapest carrier rate, in minor
currency units. Without a configured carrier a flat price is returned.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrice,
}

func init() {
	addInputFlag(priceCmd)
	priceCmd.Flags().StringVar(&priceOption, "option", "shippo-standard", "fulfillment option ID")
	rootCmd.AddCommand(priceCmd)
}

func runPrice(cmd *cobra.Command, args []string) error {
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

	price, err := components.Shipping.CalculateOptionPrice(ctx, priceOption, cart)
	if err != nil {
		return err
	}
	return writeOutput(cmd, dto.NewOptionPriceResponse(priceOption, price))
}
