// Package cli implements the parcel command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/guttosm/parcel-service/config"
	"github.com/guttosm/parcel-service/internal/app"
	"github.com/guttosm/parcel-service/internal/domain/dto"
	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/guttosm/parcel-service/internal/i18n"
	"github.com/guttosm/parcel-service/internal/metrics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitError        = 1
	ExitInvalidInput = 2
)

var version = "dev"

var (
	outputFormat string
	logLevel     string
	catalogFile  string
	rateCardFile string
	cacheSize    int
	locale       string
)

var (
	cfg        config.Config
	components *app.Components
)

var rootCmd = &cobra.Command{
	Use:   "parcel",
	Short: "Pack cart items into parcels and quote shipping",
	Long: `Packs cart line items into shipment parcels using a greedy weight-first
bin fill, picks the smallest catalog box for every parcel and asks the
configured carrier for rates.

Input documents are JSON or YAML, read from a file argument or stdin.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&outputFormat, "output", "o", dto.FormatJSON, "output format (json|yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error), overrides LOG_LEVEL")
	flags.StringVar(&catalogFile, "catalog", "", "box catalog file, overrides CATALOG_FILE")
	flags.StringVar(&rateCardFile, "rate-card", "", "carrier rate card file, overrides RATE_CARD_FILE")
	flags.IntVar(&cacheSize, "cache-size", -1, "packing plan cache size, 0 disables, overrides CACHE_SIZE")
	flags.StringVar(&locale, "lang", "", "message language, overrides LANG")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, rootCmd)
}

func run(ctx context.Context, cmd *cobra.Command) int {
	cfg = config.Config{}
	err := cmd.ExecuteContext(ctx)
	teardown()

	if err == nil {
		return ExitOK
	}
	writeError(cmd.ErrOrStderr(), err)
	if errors.Is(err, model.ErrInvalidInput) {
		return ExitInvalidInput
	}
	return ExitError
}

// setup loads configuration and wires components for every command but version.
func setup(cmd *cobra.Command, _ []string) error {
	if cmd == versionCmd {
		return nil
	}

	cfg = config.Load()
	cfg.ApplyOverrides(&config.CLIOverrides{
		LogLevel:     &logLevel,
		CatalogFile:  &catalogFile,
		RateCardFile: &rateCardFile,
		CacheSize:    &cacheSize,
		Locale:       &locale,
	})
	if err := cfg.Validate(); err != nil {
		return &configError{err: err}
	}
	if outputFormat != dto.FormatJSON && outputFormat != dto.FormatYAML {
		return &dto.ValidationError{Field: "output", Message: fmt.Sprintf("unsupported format %q", outputFormat)}
	}

	app.InitializeLogger(cfg.Log, cmd.ErrOrStderr())

	c, err := app.InitializeApp(cfg)
	if err != nil {
		return err
	}
	components = c
	return nil
}

func teardown() {
	if components != nil {
		components.Close()
		components = nil
	}
	if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
		log.Warn().Err(err).Str("path", cfg.Metrics.TextfilePath).Msg("Failed to write metrics textfile")
	}
}

// commandContext bounds carrier calls by the configured timeout.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout := cfg.Carrier.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(cmd.Context(), timeout)
}

func writeOutput(cmd *cobra.Command, v any) error {
	return dto.Encode(cmd.OutOrStdout(), outputFormat, v)
}

type configError struct {
	err error
}

func (e *configError) Error() string { return "invalid configuration: " + e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func writeError(w io.Writer, err error) {
	code := dto.ErrCodeFromError(err)
	key := i18n.ErrorKey(code)
	var cfgErr *configError
	if errors.As(err, &cfgErr) {
		code = dto.ErrCodeInvalidConfiguration
		key = i18n.ErrKeyInvalidConfiguration
	}

	resp := dto.NewError(code, i18n.GetTranslator().Translate(key, cfg.Locale)).
		WithDetail("cause", err.Error())

	format := outputFormat
	if format != dto.FormatYAML {
		format = dto.FormatJSON
	}
	if encErr := dto.Encode(w, format, resp); encErr != nil {
		_, _ = fmt.Fprintln(w, err.Error())
	}
}
