package cli

import (
	"github.com/guttosm/parcel-service/internal/domain/dto"
	"github.com/guttosm/parcel-service/internal/i18n"
	"github.com/guttosm/parcel-service/internal/logger"
	"github.com/spf13/cobra"
)

var packCmd = &cobra.Command{
	Use:   "pack [file]",
	Short: "Pack line items into parcels",
	Long: `Packs line items into parcels and assigns each parcel the smallest
catalog box that can hold it. Items carry weight and dimensions in their
metadata (grams and centimetres).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPack,
}

func init() {
	addInputFlag(packCmd)
	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	var req dto.PackRequest
	if err := decodeInput(cmd, args, &req); err != nil {
		return err
	}
	items, err := req.ToItems()
	if err != nil {
		return err
	}

	boxes, err := components.Catalog.List(cmd.Context(), cfg.Catalog.Limit)
	if err != nil {
		return err
	}

	parcels, err := components.Packer.Pack(items, boxes)
	if err != nil {
		return err
	}

	l := logger.ForCommand("pack")
	l.Info().
		Int("parcels", len(parcels)).
		Msg(i18n.GetTranslator().Translate(i18n.SuccessKeyParcelsPacked, cfg.Locale))

	return writeOutput(cmd, dto.NewPackResponse(parcels))
}
