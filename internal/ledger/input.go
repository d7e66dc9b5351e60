package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ResolveSchedule applies the shared month/year rules for budget and savings
// upserts: a zero value defaults to the current calendar month or year, a
// supplied value must sit inside the accepted bounds.
func ResolveSchedule(month, year int, now time.Time) (int, int, error) {
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return 0, 0, invalid("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return 0, 0, invalid("year must be between 2000 and 2100")
	}
	return month, year, nil
}

// ValidateBudget rejects income budgets and negative limits. Budgets exist
// only to cap expense categories.
func ValidateBudget(category string, limit decimal.Decimal) error {
	if strings.TrimSpace(category) == "" {
		return invalid("category is required")
	}
	if strings.EqualFold(category, "income") {
		return invalid("budgets can only be created for expense categories")
	}
	if limit.IsNegative() {
		return invalid("limit amount cannot be negative")
	}
	return nil
}

// ValidateSavingsTarget rejects negative targets.
func ValidateSavingsTarget(target decimal.Decimal) error {
	if target.IsNegative() {
		return invalid("target amount cannot be negative")
	}
	return nil
}
