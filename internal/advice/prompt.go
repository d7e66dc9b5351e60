package advice

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Snapshot is the slice of dashboard data the advice prompt is built from.
type Snapshot struct {
	MonthlyIncome  decimal.Decimal
	MonthlyExpense decimal.Decimal
	MonthlyBalance decimal.Decimal
	Budgets        []BudgetLine
	Savings        *SavingsLine
}

type BudgetLine struct {
	Category string
	Spent    decimal.Decimal
	Limit    decimal.Decimal
}

type SavingsLine struct {
	Target   decimal.Decimal
	Progress decimal.Decimal
}

// BuildPrompt renders the financial summary the model is asked to comment on.
// All amounts are presented in the ledger currency with the ₹ symbol.
func BuildPrompt(s Snapshot) string {
	var budgets strings.Builder
	for i, b := range s.Budgets {
		if i > 0 {
			budgets.WriteString("\n")
		}
		fmt.Fprintf(&budgets, "- %s: spent ₹%s / limit ₹%s", b.Category, b.Spent, b.Limit)
	}

	savingsText := "No savings target set for this month."
	if s.Savings != nil {
		diff := s.Savings.Target.Sub(s.Savings.Progress)
		status := "Ahead/Achieved"
		if diff.IsPositive() {
			status = "Behind by ₹" + diff.String()
		}
		savingsText = fmt.Sprintf("Monthly Savings:\n- Target: ₹%s\n- Current Progress: ₹%s\n- Status: %s",
			s.Savings.Target, s.Savings.Progress, status)
	}

	return fmt.Sprintf(
		"I am a user of a budget app. Here is my financial summary for the current month:\n"+
			"Monthly Income: ₹%s\n"+
			"Monthly Expenses: ₹%s\n"+
			"Monthly Balance: ₹%s\n"+
			"Budgets vs Spent:\n%s\n\n"+
			"%s\n\n"+
			"Please provide brief, actionable budget advice and insights based on this monthly data. "+
			"Focus on controlling spending this month, improving savings, and avoiding exceeding budgets. "+
			"Please also consider the user's savings goals and progress when giving advice. "+
			"All monetary values must be shown in INR and formatted using the ₹ symbol. "+
			"Avoid using $, USD, or other currencies in responses. "+
			"Keep the advice under 200 words.",
		s.MonthlyIncome, s.MonthlyExpense, s.MonthlyBalance, budgets.String(), savingsText)
}
