package models

import (
	"time"

	"github.com/finanzflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthBalance is the balance calculation for a single month.
//
// Income, Expenses and Balance only consider confirmed transactions.
// Pending is the signed net of all pending transactions in the month and
// is not part of Available.
type MonthBalance struct {
	Month     types.Month     `json:"month" example:"2024-01-01T00:00:00Z"`
	Income    decimal.Decimal `json:"income" example:"100"`
	Expenses  decimal.Decimal `json:"expenses" example:"40"`
	Balance   decimal.Decimal `json:"balance" example:"60"`    // Income - Expenses
	Pending   decimal.Decimal `json:"pending" example:"-20"`   // Signed net of pending transactions
	Available decimal.Decimal `json:"available" example:"560"` // BaseAccountBalance + Balance
}

// Projected is the available amount if all pending transactions confirm.
func (b MonthBalance) Projected() decimal.Decimal {
	return b.Available.Add(b.Pending)
}

// MonthlyAnalysis is the confirmed-only aggregation for a single month.
//
// Categories maps each category to its signed net amount, income positive
// and expenses negative.
type MonthlyAnalysis struct {
	Month      types.Month                `json:"month" example:"2024-01-01T00:00:00Z"`
	Income     decimal.Decimal            `json:"income" example:"2000"`
	Expenses   decimal.Decimal            `json:"expenses" example:"850"`
	Balance    decimal.Decimal            `json:"balance" example:"1150"`
	Categories map[string]decimal.Decimal `json:"categories"`
}

// transactionsInMonth loads the transactions of one month, oldest first.
func transactionsInMonth(db *gorm.DB, month types.Month) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Where("date >= ? AND date < ?", month.FirstDay(), month.AddDate(0, 1).FirstDay()).
		Order("date(date) ASC").
		Order("created_at ASC").
		Find(&transactions).Error

	return transactions, err
}

// CalculateMonthBalance computes the balance of a single month.
//
// Confirmed transactions contribute to Income, Expenses and Balance.
// Pending transactions only contribute to the signed Pending net, pending
// income adds and pending expenses subtract.
func CalculateMonthBalance(db *gorm.DB, month types.Month) (MonthBalance, error) {
	transactions, err := transactionsInMonth(db, month)
	if err != nil {
		return MonthBalance{}, err
	}

	settings, err := GetSettings(db)
	if err != nil {
		return MonthBalance{}, err
	}

	balance := MonthBalance{
		Month:    month,
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Pending:  decimal.Zero,
	}

	for _, transaction := range transactions {
		if transaction.IsPending {
			balance.Pending = balance.Pending.Add(transaction.Type.Signed(transaction.Amount))
			continue
		}

		if transaction.Type == TransactionTypeIncome {
			balance.Income = balance.Income.Add(transaction.Amount)
		} else {
			balance.Expenses = balance.Expenses.Add(transaction.Amount)
		}
	}

	balance.Balance = balance.Income.Sub(balance.Expenses)
	balance.Available = settings.BaseAccountBalance.Add(balance.Balance)

	return balance, nil
}

// AnalyzeMonth computes the confirmed-only analysis for a single month.
func AnalyzeMonth(db *gorm.DB, month types.Month) (MonthlyAnalysis, error) {
	transactions, err := transactionsInMonth(db, month)
	if err != nil {
		return MonthlyAnalysis{}, err
	}

	analysis := MonthlyAnalysis{
		Month:      month,
		Income:     decimal.Zero,
		Expenses:   decimal.Zero,
		Categories: make(map[string]decimal.Decimal),
	}

	for _, transaction := range transactions {
		// Pending transactions are excluded from every confirmed aggregation
		if transaction.IsPending {
			continue
		}

		if transaction.Type == TransactionTypeIncome {
			analysis.Income = analysis.Income.Add(transaction.Amount)
		} else {
			analysis.Expenses = analysis.Expenses.Add(transaction.Amount)
		}

		signed := transaction.Type.Signed(transaction.Amount)
		analysis.Categories[transaction.Category] = analysis.Categories[transaction.Category].Add(signed)
	}

	analysis.Balance = analysis.Income.Sub(analysis.Expenses)

	return analysis, nil
}

// MonthlyAnalyses computes the analyses for the most recent n months ending
// at the month of now, ordered from the current month backwards.
func MonthlyAnalyses(db *gorm.DB, n int, now time.Time) ([]MonthlyAnalysis, error) {
	current := types.MonthOf(now.In(time.UTC))

	analyses := make([]MonthlyAnalysis, 0, n)
	for i := 0; i < n; i++ {
		analysis, err := AnalyzeMonth(db, current.AddDate(0, -i))
		if err != nil {
			return nil, err
		}

		analyses = append(analyses, analysis)
	}

	return analyses, nil
}

// YearlyAnalysis computes one analysis per calendar month of the year.
// It always returns exactly 12 entries, January first.
func YearlyAnalysis(db *gorm.DB, year int) ([]MonthlyAnalysis, error) {
	analyses := make([]MonthlyAnalysis, 0, 12)
	for month := time.January; month <= time.December; month++ {
		analysis, err := AnalyzeMonth(db, types.NewMonth(year, month))
		if err != nil {
			return nil, err
		}

		analyses = append(analyses, analysis)
	}

	return analyses, nil
}

// CurrentBalance is the base account balance plus the signed sum of the
// current month's confirmed transactions. Pending transactions and other
// months are not considered.
func CurrentBalance(db *gorm.DB, now time.Time) (decimal.Decimal, error) {
	balance, err := CalculateMonthBalance(db, types.MonthOf(now.In(time.UTC)))
	if err != nil {
		return decimal.Zero, err
	}

	return balance.Available, nil
}
