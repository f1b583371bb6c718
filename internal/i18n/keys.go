// Package i18n provides internationalization support for the parcel service.
package i18n

// Error message translation keys. Each key is "error." followed by the
// error code reported in command output.
const (
	ErrKeyInvalidRequest        = "error.invalid_request"
	ErrKeyInternalError         = "error.internal_error"
	ErrKeyAddressRequired       = "error.shipping_address_required"
	ErrKeyNotFound              = "error.not_found"
	ErrKeyCarrierUnavailable    = "error.carrier_unavailable"
	ErrKeyRateCalculationFailed = "error.rate_calculation_failed"
	ErrKeyInvalidCatalog        = "error.invalid_catalog"
	ErrKeyInvalidConfiguration  = "error.invalid_configuration"
)

// Success message translation keys.
const (
	// SuccessKeyParcelsPacked is logged after a pack command.
	SuccessKeyParcelsPacked = "success.parcels_packed"
)

// ErrorKey returns the translation key for an error code.
func ErrorKey(code string) string {
	return "error." + code
}
