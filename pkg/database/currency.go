package database

// ISO 4217 alphabetic codes accepted by the pipeline. Receipts from the
// supported vendors settle in a small set of currencies, but codes appearing
// verbatim in message bodies are validated against the full common list so a
// garbled token never slips through as a currency.
var validCurrencies = map[string]struct{}{
	"AUD": {}, "BND": {}, "CAD": {}, "CHF": {}, "CNY": {}, "EUR": {},
	"GBP": {}, "HKD": {}, "IDR": {}, "INR": {}, "JPY": {}, "KHR": {},
	"KRW": {}, "LAK": {}, "MMK": {}, "MYR": {}, "NZD": {}, "PHP": {},
	"SGD": {}, "THB": {}, "TWD": {}, "USD": {}, "VND": {},
}

func IsValidCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}

	_, ok := validCurrencies[code]

	return ok
}
