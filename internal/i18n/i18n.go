// Package i18n provides internationalization support for the parcel service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"
)

// DefaultLocale is the default language locale (English).
const DefaultLocale = "en"

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// ResolveLocale maps a language tag such as "pt-BR" or "nl_NL.UTF-8" onto a
// supported locale, falling back to DefaultLocale.
func ResolveLocale(tag string) string {
	lang := strings.ToLower(strings.TrimSpace(tag))
	if idx := strings.IndexAny(lang, "-_.@"); idx > 0 {
		lang = lang[:idx]
	}
	if _, ok := getDefaultMessages()[lang]; ok {
		return lang
	}
	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:        "Invalid request",
			ErrKeyInternalError:         "An unexpected error occurred",
			ErrKeyAddressRequired:       "A shipping address is required",
			ErrKeyNotFound:              "Fulfillment option not found",
			ErrKeyCarrierUnavailable:    "Carrier is temporarily unavailable",
			ErrKeyRateCalculationFailed: "Failed to calculate shipping rates",
			ErrKeyInvalidCatalog:        "Box catalog or rate card is invalid",
			ErrKeyInvalidConfiguration:  "Invalid configuration",

			SuccessKeyParcelsPacked: "Items packed into parcels",
		},
		"pt": {
			ErrKeyInvalidRequest:        "Requisição inválida",
			ErrKeyInternalError:         "Ocorreu um erro inesperado",
			ErrKeyAddressRequired:       "Endereço de entrega é obrigatório",
			ErrKeyNotFound:              "Opção de envio não encontrada",
			ErrKeyCarrierUnavailable:    "Transportadora temporariamente indisponível",
			ErrKeyRateCalculationFailed: "Falha ao calcular as tarifas de envio",
			ErrKeyInvalidCatalog:        "Catálogo de caixas ou tabela de tarifas inválida",
			ErrKeyInvalidConfiguration:  "Configuração inválida",

			SuccessKeyParcelsPacked: "Itens embalados em volumes",
		},
		"nl": {
			ErrKeyInvalidRequest:        "Ongeldig verzoek",
			ErrKeyInternalError:         "Er is een onverwachte fout opgetreden",
			ErrKeyAddressRequired:       "Een verzendadres is vereist",
			ErrKeyNotFound:              "Verzendoptie niet gevonden",
			ErrKeyCarrierUnavailable:    "Vervoerder is tijdelijk niet beschikbaar",
			ErrKeyRateCalculationFailed: "Verzendtarieven konden niet worden berekend",
			ErrKeyInvalidCatalog:        "Dooscatalogus of tariefkaart is ongeldig",
			ErrKeyInvalidConfiguration:  "Ongeldige configuratie",

			SuccessKeyParcelsPacked: "Artikelen verpakt in pakketten",
		},
	}
}
