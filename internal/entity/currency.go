package entity

type Currency string

const (
	CurrencyRUB Currency = "RUB"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCNY Currency = "CNY"
	CurrencyJPY Currency = "JPY"
	CurrencyKZT Currency = "KZT"
	CurrencyBYN Currency = "BYN"
)

// DefaultCurrency is assigned to new users and used by reports when no
// currency query parameter is given.
const DefaultCurrency = CurrencyRUB

func IsValidCurrency(currency string) bool {
	switch Currency(currency) {
	case CurrencyRUB, CurrencyUSD, CurrencyEUR, CurrencyGBP,
		CurrencyCNY, CurrencyJPY, CurrencyKZT, CurrencyBYN:
		return true
	default:
		return false
	}
}
