// Package currency converts incoming transaction amounts into the ledger
// currency. The live rate lookup is best effort: any failure falls back to a
// static rate table so that transaction creation never depends on the
// provider being up.
package currency

import (
	"context"
	"strings"

	"github.com/budgetwise/backend/internal/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var fallbackRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(85),
	"EUR": decimal.NewFromInt(92),
	"GBP": decimal.NewFromInt(108),
}

type Normalizer struct {
	Ledger   string // ledger currency code, e.g. "INR"
	Provider RateProvider
}

func NewNormalizer(ledger string, provider RateProvider) *Normalizer {
	return &Normalizer{Ledger: ledger, Provider: provider}
}

// Normalize converts an original amount into the ledger currency and reports
// the rate applied plus the resolved currency code. An empty currency means
// the amount is already in the ledger currency. Multiplication is exact
// decimal arithmetic; the stored invariant is amount == original × rate.
func (n *Normalizer) Normalize(ctx context.Context, original decimal.Decimal, originalCurrency string) (amount, rate decimal.Decimal, currency string) {
	currency = strings.ToUpper(strings.TrimSpace(originalCurrency))
	if currency == "" {
		currency = n.Ledger
	}
	if strings.EqualFold(currency, n.Ledger) {
		return original, decimal.NewFromInt(1), currency
	}

	live, err := n.Provider.Rate(ctx, currency, n.Ledger)
	if err != nil {
		logger.Log.Warn("live rate lookup failed, using fallback table",
			zap.String("currency", currency), zap.Error(err))
		rate = FallbackRate(currency)
		return original.Mul(rate), rate, currency
	}

	rate = decimal.NewFromFloat(live)
	return original.Mul(rate), rate, currency
}

// FallbackRate is the static conversion table used when the live lookup is
// unavailable. Unknown codes convert at 1, preserving the original amount.
func FallbackRate(currency string) decimal.Decimal {
	if r, ok := fallbackRates[strings.ToUpper(currency)]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}
