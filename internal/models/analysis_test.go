package models_test

import (
	"time"

	"github.com/finanzflow/backend/internal/models"
	"github.com/finanzflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCalculateMonthBalance() {
	suite.setBaseAccountBalance(500)

	_ = suite.createTestTransaction(models.Transaction{
		Date:   date(2024, time.January, 5),
		Amount: decimal.NewFromFloat(100),
		Type:   models.TransactionTypeIncome,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date:   date(2024, time.January, 10),
		Amount: decimal.NewFromFloat(40),
		Type:   models.TransactionTypeExpense,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date:      date(2024, time.January, 20),
		Amount:    decimal.NewFromFloat(20),
		Type:      models.TransactionTypeExpense,
		IsPending: true,
	})

	balance, err := models.CalculateMonthBalance(models.DB, types.NewMonth(2024, time.January))
	require.Nil(suite.T(), err)

	assert.True(suite.T(), balance.Income.Equal(decimal.NewFromFloat(100)), "Income is %s", balance.Income)
	assert.True(suite.T(), balance.Expenses.Equal(decimal.NewFromFloat(40)), "Expenses are %s", balance.Expenses)
	assert.True(suite.T(), balance.Balance.Equal(decimal.NewFromFloat(60)), "Balance is %s", balance.Balance)
	assert.True(suite.T(), balance.Pending.Equal(decimal.NewFromFloat(-20)), "Pending is %s", balance.Pending)
	assert.True(suite.T(), balance.Available.Equal(decimal.NewFromFloat(560)), "Available is %s", balance.Available)
	assert.True(suite.T(), balance.Projected().Equal(decimal.NewFromFloat(540)), "Projected is %s", balance.Projected())
}

func (suite *TestSuiteStandard) TestCalculateMonthBalanceEmpty() {
	balance, err := models.CalculateMonthBalance(models.DB, types.NewMonth(2024, time.January))
	require.Nil(suite.T(), err)

	assert.True(suite.T(), balance.Income.IsZero())
	assert.True(suite.T(), balance.Expenses.IsZero())
	assert.True(suite.T(), balance.Balance.IsZero())
	assert.True(suite.T(), balance.Pending.IsZero())
	assert.True(suite.T(), balance.Available.IsZero(), "Available for an empty store must equal the default base account balance")
}

func (suite *TestSuiteStandard) TestCalculateMonthBalanceIgnoresOtherMonths() {
	suite.setBaseAccountBalance(500)

	_ = suite.createTestTransaction(models.Transaction{
		Date:   date(2024, time.February, 1),
		Amount: decimal.NewFromFloat(100),
		Type:   models.TransactionTypeIncome,
	})

	balance, err := models.CalculateMonthBalance(models.DB, types.NewMonth(2024, time.January))
	require.Nil(suite.T(), err)

	assert.True(suite.T(), balance.Income.IsZero())
	assert.True(suite.T(), balance.Available.Equal(decimal.NewFromFloat(500)))
}

func (suite *TestSuiteStandard) TestAnalyzeMonth() {
	_ = suite.createTestTransaction(models.Transaction{
		Date:     date(2024, time.January, 1),
		Amount:   decimal.NewFromFloat(2000),
		Category: "Gehalt",
		Type:     models.TransactionTypeIncome,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date:     date(2024, time.January, 3),
		Amount:   decimal.NewFromFloat(850),
		Category: "Miete",
		Type:     models.TransactionTypeExpense,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date:     date(2024, time.January, 10),
		Amount:   decimal.NewFromFloat(50),
		Category: "Miete",
		Type:     models.TransactionTypeExpense,
	})

	// Pending transactions must not appear in the analysis
	_ = suite.createTestTransaction(models.Transaction{
		Date:      date(2024, time.January, 20),
		Amount:    decimal.NewFromFloat(500),
		Category:  "Unterhaltung",
		Type:      models.TransactionTypeExpense,
		IsPending: true,
	})

	analysis, err := models.AnalyzeMonth(models.DB, types.NewMonth(2024, time.January))
	require.Nil(suite.T(), err)

	assert.True(suite.T(), analysis.Income.Equal(decimal.NewFromFloat(2000)))
	assert.True(suite.T(), analysis.Expenses.Equal(decimal.NewFromFloat(900)))
	assert.True(suite.T(), analysis.Balance.Equal(decimal.NewFromFloat(1100)))

	require.Len(suite.T(), analysis.Categories, 2)
	assert.True(suite.T(), analysis.Categories["Gehalt"].Equal(decimal.NewFromFloat(2000)))
	assert.True(suite.T(), analysis.Categories["Miete"].Equal(decimal.NewFromFloat(-900)), "Category net must be signed")
}

func (suite *TestSuiteStandard) TestMonthlyAnalyses() {
	now := date(2024, time.March, 15)

	_ = suite.createTestTransaction(models.Transaction{
		Date:   date(2024, time.March, 1),
		Amount: decimal.NewFromFloat(100),
		Type:   models.TransactionTypeIncome,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date:   date(2024, time.January, 1),
		Amount: decimal.NewFromFloat(30),
		Type:   models.TransactionTypeExpense,
	})

	analyses, err := models.MonthlyAnalyses(models.DB, 3, now)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), analyses, 3)

	assert.True(suite.T(), analyses[0].Month.Equal(types.NewMonth(2024, time.March)), "Current month must come first")
	assert.True(suite.T(), analyses[1].Month.Equal(types.NewMonth(2024, time.February)))
	assert.True(suite.T(), analyses[2].Month.Equal(types.NewMonth(2024, time.January)))

	assert.True(suite.T(), analyses[0].Income.Equal(decimal.NewFromFloat(100)))
	assert.True(suite.T(), analyses[1].Income.IsZero())
	assert.True(suite.T(), analyses[2].Expenses.Equal(decimal.NewFromFloat(30)))
}

func (suite *TestSuiteStandard) TestYearlyAnalysis() {
	_ = suite.createTestTransaction(models.Transaction{
		Date:   date(2024, time.June, 1),
		Amount: decimal.NewFromFloat(100),
		Type:   models.TransactionTypeIncome,
	})

	analyses, err := models.YearlyAnalysis(models.DB, 2024)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), analyses, 12, "A yearly analysis always has exactly 12 entries")

	assert.True(suite.T(), analyses[0].Month.Equal(types.NewMonth(2024, time.January)))
	assert.True(suite.T(), analyses[11].Month.Equal(types.NewMonth(2024, time.December)))
	assert.True(suite.T(), analyses[5].Income.Equal(decimal.NewFromFloat(100)))
}

func (suite *TestSuiteStandard) TestCurrentBalance() {
	suite.setBaseAccountBalance(500)

	_ = suite.createTestTransaction(models.Transaction{
		Date:   date(2024, time.January, 5),
		Amount: decimal.NewFromFloat(100),
		Type:   models.TransactionTypeIncome,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date:      date(2024, time.January, 6),
		Amount:    decimal.NewFromFloat(20),
		Type:      models.TransactionTypeExpense,
		IsPending: true,
	})

	balance, err := models.CurrentBalance(models.DB, date(2024, time.January, 15))
	require.Nil(suite.T(), err)

	assert.True(suite.T(), balance.Equal(decimal.NewFromFloat(600)), "Balance is %s", balance)
}
