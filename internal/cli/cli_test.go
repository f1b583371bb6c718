package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testCatalog = `[
  {"id": "box_small", "name": "Small", "length": 20, "width": 15, "height": 10, "weight_limit": 5},
  {"id": "box_large", "name": "Large", "length": 40, "width": 30, "height": 30, "weight_limit": 20}
]`

const testRateCard = `
currency: USD
services:
  - provider: UPS
    service_level: Ground
    base_amount: "9.00"
    per_kg: "0"
  - provider: USPS
    service_level: Priority
    base_amount: "7.50"
    per_kg: "0"
`

const mugCart = `{
  "cart_id": "cart_1",
  "items": [{"id": "mug", "title": "Mug", "quantity": 2, "metadata": {"weight": 400, "length": 10, "width": 10, "height": 10}}],
  "shipping_address": {"first_name": "Ada", "last_name": "Lovelace", "address_1": "1 Analytical Way", "city": "London", "country_code": "GB"}
}`

type result struct {
	stdout string
	stderr string
	code   int
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CATALOG_FILE", "CATALOG_LIMIT", "CACHE_SIZE", "CACHE_SHARDS", "RATE_CARD_FILE",
		"METRICS_TEXTFILE", "LOG_PRETTY", "CARRIER_RATE_LIMIT_RPS",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LANG", "C")
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	resetFlags(rootCmd)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	code := run(context.Background(), rootCmd)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "parcel", rootCmd.Use)
	for _, name := range []string{"pack", "rates", "price", "boxes", "options", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestVersionCmd_Executes(t *testing.T) {
	isolateEnv(t)
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	res := execute(t, "", "version")

	assert.Equal(t, ExitOK, res.code)
	assert.Contains(t, res.stdout, "parcel version test-version-1.0.0")
}

func TestPackCmd(t *testing.T) {
	isolateEnv(t)
	catalog := writeTemp(t, "boxes.json", testCatalog)

	t.Run("stdin json", func(t *testing.T) {
		res := execute(t, `{"items":[{"id":"mug","quantity":2,"metadata":{"weight":400,"length":10,"width":10,"height":10}}]}`,
			"pack", "--catalog", catalog)

		require.Equal(t, ExitOK, res.code, res.stderr)
		var out struct {
			Parcels []struct {
				BoxID       string  `json:"box_id"`
				WeightGrams float64 `json:"weight_grams"`
				Items       []struct {
					ID       string `json:"id"`
					Quantity int    `json:"quantity"`
				} `json:"items"`
			} `json:"parcels"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
		require.Len(t, out.Parcels, 1)
		assert.Equal(t, "box_small", out.Parcels[0].BoxID)
		assert.Equal(t, 800.0, out.Parcels[0].WeightGrams)
		assert.Equal(t, 2, out.Parcels[0].Items[0].Quantity)
	})

	t.Run("yaml file and yaml output", func(t *testing.T) {
		input := writeTemp(t, "cart.yaml", "items:\n  - id: book\n    quantity: 1\n    metadata:\n      weight: \"9000\"\n")

		res := execute(t, "", "pack", input, "--catalog", catalog, "-o", "yaml")

		require.Equal(t, ExitOK, res.code, res.stderr)
		var out struct {
			Parcels []struct {
				BoxID string `yaml:"box_id"`
			} `yaml:"parcels"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &out))
		require.Len(t, out.Parcels, 1)
		assert.Equal(t, "custom", out.Parcels[0].BoxID)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		res := execute(t, `{"items":[{"id":"mug","quantity":-1}]}`, "pack")

		assert.Equal(t, ExitInvalidInput, res.code)
		assert.Empty(t, res.stdout)
		assert.Contains(t, res.stderr, `"invalid_request"`)
		assert.Contains(t, res.stderr, "items[0].quantity")
	})

	t.Run("malformed input", func(t *testing.T) {
		res := execute(t, `{"items":`, "pack")

		assert.Equal(t, ExitInvalidInput, res.code)
	})

	t.Run("unsupported output format", func(t *testing.T) {
		res := execute(t, `{"items":[]}`, "pack", "-o", "xml")

		assert.Equal(t, ExitInvalidInput, res.code)
	})
}

func TestRatesCmd(t *testing.T) {
	isolateEnv(t)

	t.Run("address required", func(t *testing.T) {
		res := execute(t, `{"items":[{"id":"mug","quantity":1,"metadata":{"weight":100}}]}`, "rates")

		assert.Equal(t, ExitError, res.code)
		assert.Contains(t, res.stderr, `"shipping_address_required"`)
		assert.Contains(t, res.stderr, "A shipping address is required")
	})

	t.Run("no carrier configured", func(t *testing.T) {
		res := execute(t, mugCart, "rates")

		require.Equal(t, ExitOK, res.code, res.stderr)
		var out struct {
			CartID string            `json:"cart_id"`
			Rates  []json.RawMessage `json:"rates"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
		assert.Equal(t, "cart_1", out.CartID)
		assert.Empty(t, out.Rates)
	})

	t.Run("rate card sorted by amount", func(t *testing.T) {
		card := writeTemp(t, "rates.yaml", testRateCard)

		res := execute(t, mugCart, "rates", "--rate-card", card)

		require.Equal(t, ExitOK, res.code, res.stderr)
		var out struct {
			Rates []struct {
				Provider string `json:"provider"`
				Amount   string `json:"amount"`
			} `json:"rates"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
		require.Len(t, out.Rates, 2)
		assert.Equal(t, "USPS", out.Rates[0].Provider)
		assert.Equal(t, "7.5", out.Rates[0].Amount)
		assert.Equal(t, "UPS", out.Rates[1].Provider)
	})
}

func TestPriceCmd(t *testing.T) {
	isolateEnv(t)

	t.Run("flat price without carrier", func(t *testing.T) {
		res := execute(t, mugCart, "price")

		require.Equal(t, ExitOK, res.code, res.stderr)
		assert.JSONEq(t, `{"option_id":"shippo-standard","price":1500,"is_calculated_price":true}`, res.stdout)
	})

	t.Run("cheapest rate", func(t *testing.T) {
		card := writeTemp(t, "rates.yaml", testRateCard)

		res := execute(t, mugCart, "price", "--option", "shippo-express", "--rate-card", card)

		require.Equal(t, ExitOK, res.code, res.stderr)
		assert.JSONEq(t, `{"option_id":"shippo-express","price":750,"is_calculated_price":true}`, res.stdout)
	})

	t.Run("unknown option", func(t *testing.T) {
		res := execute(t, mugCart, "price", "--option", "pigeon", "--lang", "pt")

		assert.Equal(t, ExitError, res.code)
		assert.Contains(t, res.stderr, `"not_found"`)
		assert.Contains(t, res.stderr, "Opção de envio não encontrada")
	})
}

func TestBoxesCmd(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CATALOG_FILE", writeTemp(t, "boxes.json", testCatalog))

	res := execute(t, "", "boxes")

	require.Equal(t, ExitOK, res.code, res.stderr)
	var out struct {
		Boxes []struct {
			ID string `json:"id"`
		} `json:"boxes"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "box_small", out.Boxes[0].ID)
}

func TestBoxesCmd_InvalidCatalog(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CATALOG_FILE", writeTemp(t, "boxes.json", `[{"id":"custom","name":"Mine"}]`))

	res := execute(t, "", "boxes")

	assert.Equal(t, ExitError, res.code)
	assert.Contains(t, res.stderr, `"invalid_catalog"`)
}

func TestOptionsCmd(t *testing.T) {
	isolateEnv(t)

	res := execute(t, "", "options")

	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.JSONEq(t, `{"options":[
		{"id":"shippo-standard","name":"Standard Shipping"},
		{"id":"shippo-express","name":"Express Shipping"}
	]}`, res.stdout)
}

func TestInvalidConfiguration(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CATALOG_LIMIT", "0")

	res := execute(t, "", "options")

	assert.Equal(t, ExitError, res.code)
	assert.Contains(t, res.stderr, `"invalid_configuration"`)
	assert.Contains(t, res.stderr, "CATALOG_LIMIT")
}

func TestMetricsTextfile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "parcel.prom")
	t.Setenv("METRICS_TEXTFILE", path)

	res := execute(t, `{"items":[{"id":"mug","quantity":1,"metadata":{"weight":100}}]}`, "pack")

	require.Equal(t, ExitOK, res.code, res.stderr)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "parcel_packs_total")
}
