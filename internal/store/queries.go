package store

import (
	"errors"

	"github.com/budgetwise/backend/internal/ledger"
	"github.com/budgetwise/backend/internal/models"
	"gorm.io/gorm"
)

// TransactionsForUser lists a user's full history, newest first.
func TransactionsForUser(userID uint) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := DB.Where("user_id = ?", userID).Order("date DESC").Find(&txs).Error
	return txs, err
}

// BudgetByNaturalKey finds the budget for (user, category, month, year).
// ledger.ErrNotFound when absent.
func BudgetByNaturalKey(userID uint, category string, month, year int) (models.Budget, error) {
	var b models.Budget
	err := DB.Where("user_id = ? AND category = ? AND month = ? AND year = ?",
		userID, category, month, year).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Budget{}, ledger.ErrNotFound
	}
	return b, err
}

// BudgetsForUser lists every budget the user has, across all months.
func BudgetsForUser(userID uint) ([]models.Budget, error) {
	var budgets []models.Budget
	err := DB.Where("user_id = ?", userID).Order("year, month, category").Find(&budgets).Error
	return budgets, err
}

// SavingsByNaturalKey finds the savings goal for (user, month, year).
// ledger.ErrNotFound when absent.
func SavingsByNaturalKey(userID uint, month, year int) (models.Savings, error) {
	var s models.Savings
	err := DB.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Savings{}, ledger.ErrNotFound
	}
	return s, err
}

// SavingsForUser lists every savings goal the user has.
func SavingsForUser(userID uint) ([]models.Savings, error) {
	var goals []models.Savings
	err := DB.Where("user_id = ?", userID).Order("year, month").Find(&goals).Error
	return goals, err
}
