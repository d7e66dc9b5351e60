package seed

import (
	"time"

	"github.com/budgetwise/backend/configs"
	"github.com/budgetwise/backend/internal/logger"
	"github.com/budgetwise/backend/internal/models"
	"github.com/budgetwise/backend/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	demoExternalID = "demo-user"
	demoEmail      = "demo@budgetwise.local"
)

// Run inserts a demo user with a small transaction history, one budget and
// one savings goal. Idempotent: skipped when the demo user already exists.
func Run() {
	if !configs.AppConfig.Seed.Enabled {
		return
	}

	db := store.DB
	var count int64
	if err := db.Model(&models.User{}).Where("external_id = ?", demoExternalID).Count(&count).Error; err != nil {
		logger.Log.Fatal("seed check failed", zap.Error(err))
	}
	if count > 0 {
		logger.Log.Info("seed already applied, skipping")
		return
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	one := decimal.NewFromInt(1)

	err := db.Transaction(func(tx *gorm.DB) error {
		user := models.User{ExternalID: demoExternalID, Email: demoEmail, Name: "Demo User"}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		txs := []models.Transaction{
			{
				UserID: user.ID, Type: models.TypeIncome, Category: "Salary",
				Amount: decimal.NewFromInt(50000), OriginalAmount: decimal.NewFromInt(50000),
				OriginalCurrency: configs.AppConfig.Ledger.Currency, ConversionRate: one,
				Date: firstOfMonth, Description: "Monthly salary",
			},
			{
				UserID: user.ID, Type: models.TypeExpense, Category: "Food",
				Amount: decimal.NewFromInt(4200), OriginalAmount: decimal.NewFromInt(4200),
				OriginalCurrency: configs.AppConfig.Ledger.Currency, ConversionRate: one,
				Date: firstOfMonth.AddDate(0, 0, 3), Description: "Groceries",
			},
			{
				UserID: user.ID, Type: models.TypeExpense, Category: "Transport",
				Amount: decimal.NewFromInt(1500), OriginalAmount: decimal.NewFromInt(1500),
				OriginalCurrency: configs.AppConfig.Ledger.Currency, ConversionRate: one,
				Date: firstOfMonth.AddDate(0, 0, 5), Description: "Metro card top-up",
			},
		}
		if err := tx.Create(&txs).Error; err != nil {
			return err
		}

		budget := models.Budget{
			UserID: user.ID, Category: "Food",
			LimitAmount: decimal.NewFromInt(8000),
			Month:       int(now.Month()), Year: now.Year(),
		}
		if err := tx.Create(&budget).Error; err != nil {
			return err
		}

		goal := models.Savings{
			UserID:       user.ID,
			TargetAmount: decimal.NewFromInt(20000),
			Month:        int(now.Month()), Year: now.Year(),
		}
		return tx.Create(&goal).Error
	})
	if err != nil {
		logger.Log.Fatal("seed failed", zap.Error(err))
	}
	logger.Log.Info("seed applied", zap.String("user", demoEmail))
}
