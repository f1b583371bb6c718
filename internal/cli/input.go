package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/guttosm/parcel-service/internal/domain/dto"
	"github.com/spf13/cobra"
)

var inputFormat string

// decodeInput reads the document named by args[0], or stdin when absent or "-".
func decodeInput(cmd *cobra.Command, args []string, v any) error {
	var (
		data   []byte
		err    error
		format = inputFormat
	)

	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
		if format == "" {
			format = dto.FormatFromPath(args[0])
		}
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return dto.Decode(data, format, v)
}

func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputFormat, "input", "i", "", "input format (json|yaml), detected from the file extension by default")
}
