package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

type User struct {
	gorm.Model
	ExternalID string `gorm:"uniqueIndex;size:255;not null"`
	Email      string `gorm:"uniqueIndex;size:255;not null"`
	Name       string `gorm:"size:100;not null"`
}

// Transaction amounts are stored in the ledger currency; the original
// amount/currency and the rate applied at creation time are kept alongside.
type Transaction struct {
	gorm.Model
	UserID           uint            `gorm:"index;not null"`
	Type             string          `gorm:"size:10;not null"` // INCOME | EXPENSE
	Category         string          `gorm:"size:100;not null"`
	Amount           decimal.Decimal `gorm:"type:numeric(16,4);not null"`
	OriginalAmount   decimal.Decimal `gorm:"type:numeric(16,4);not null"`
	OriginalCurrency string          `gorm:"size:3;not null"`
	ConversionRate   decimal.Decimal `gorm:"type:numeric(16,6);not null"`
	Date             time.Time       `gorm:"type:date;index;not null"`
	Description      string          `gorm:"size:255"`
}

// Budget caps one expense category for one calendar month. The spent amount
// is derived from transactions on every read, never stored.
type Budget struct {
	gorm.Model
	UserID      uint            `gorm:"not null;uniqueIndex:idx_budget_key"`
	Category    string          `gorm:"size:100;not null;uniqueIndex:idx_budget_key"`
	LimitAmount decimal.Decimal `gorm:"type:numeric(16,4);not null"`
	Month       int             `gorm:"not null;uniqueIndex:idx_budget_key"`
	Year        int             `gorm:"not null;uniqueIndex:idx_budget_key"`
}

// Savings is the one savings goal a user may have per calendar month.
// Progress is derived from transactions on every read, never stored.
type Savings struct {
	gorm.Model
	UserID       uint            `gorm:"not null;uniqueIndex:idx_savings_key"`
	TargetAmount decimal.Decimal `gorm:"type:numeric(16,4);not null"`
	Month        int             `gorm:"not null;uniqueIndex:idx_savings_key"`
	Year         int             `gorm:"not null;uniqueIndex:idx_savings_key"`
}
