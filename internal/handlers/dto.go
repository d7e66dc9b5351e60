package handlers

import (
	"github.com/budgetwise/backend/internal/models"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type TransactionRequest struct {
	Type             string           `json:"type"`
	Category         string           `json:"category"`
	Amount           decimal.Decimal  `json:"amount"`
	OriginalAmount   *decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string           `json:"originalCurrency"`
	Date             string           `json:"date"`
	Description      string           `json:"description"`
}

type TransactionResponse struct {
	ID               uint            `json:"id"`
	UserID           uint            `json:"userId"`
	Type             string          `json:"type"`
	Category         string          `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string          `json:"originalCurrency"`
	ConversionRate   decimal.Decimal `json:"conversionRate"`
	Date             string          `json:"date"`
	Description      string          `json:"description,omitempty"`
}

func toTransactionResponse(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               t.ID,
		UserID:           t.UserID,
		Type:             t.Type,
		Category:         t.Category,
		Amount:           t.Amount,
		OriginalAmount:   t.OriginalAmount,
		OriginalCurrency: t.OriginalCurrency,
		ConversionRate:   t.ConversionRate,
		Date:             t.Date.Format(dateLayout),
		Description:      t.Description,
	}
}

type BudgetRequest struct {
	Category    string          `json:"category"`
	LimitAmount decimal.Decimal `json:"limitAmount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
}

type BudgetResponse struct {
	ID          uint            `json:"id"`
	UserID      uint            `json:"userId"`
	Category    string          `json:"category"`
	LimitAmount decimal.Decimal `json:"limitAmount"`
	SpentAmount decimal.Decimal `json:"spentAmount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
}

func toBudgetResponse(b models.Budget, spent decimal.Decimal) BudgetResponse {
	return BudgetResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Category:    b.Category,
		LimitAmount: b.LimitAmount,
		SpentAmount: spent,
		Month:       b.Month,
		Year:        b.Year,
	}
}

type SavingsRequest struct {
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
}

type SavingsResponse struct {
	ID             uint            `json:"id"`
	UserID         uint            `json:"userId"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	ProgressAmount decimal.Decimal `json:"progressAmount"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
}

func toSavingsResponse(s models.Savings, progress decimal.Decimal) SavingsResponse {
	return SavingsResponse{
		ID:             s.ID,
		UserID:         s.UserID,
		TargetAmount:   s.TargetAmount,
		ProgressAmount: progress,
		Month:          s.Month,
		Year:           s.Year,
	}
}

type UserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UserResponse struct {
	ID         uint   `json:"id"`
	ExternalID string `json:"externalId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, ExternalID: u.ExternalID, Email: u.Email, Name: u.Name}
}

type DashboardResponse struct {
	TotalIncome              decimal.Decimal            `json:"totalIncome"`
	TotalExpense             decimal.Decimal            `json:"totalExpense"`
	Balance                  decimal.Decimal            `json:"balance"`
	ExpenseByCategory        map[string]decimal.Decimal `json:"expenseByCategory"`
	MonthlyIncome            decimal.Decimal            `json:"monthlyIncome"`
	MonthlyExpense           decimal.Decimal            `json:"monthlyExpense"`
	MonthlyBalance           decimal.Decimal            `json:"monthlyBalance"`
	MonthlyExpenseByCategory map[string]decimal.Decimal `json:"monthlyExpenseByCategory"`
	Budgets                  []BudgetResponse           `json:"budgets"`
	MonthlySavings           *SavingsResponse           `json:"monthlySavings,omitempty"`
}
