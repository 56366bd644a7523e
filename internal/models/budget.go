package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod is the time frame a budget limit applies to.
type BudgetPeriod string

const (
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Valid reports whether the period is one of the known budget periods.
func (p BudgetPeriod) Valid() bool {
	return p == PeriodMonthly || p == PeriodYearly
}

// Budget is a spending limit for a single category.
//
// Spent is written by callers recomputing it from the aggregation engine,
// the store never maintains it on its own.
type Budget struct {
	DefaultModel
	Category string          `json:"category" gorm:"uniqueIndex" example:"Lebensmittel"`
	Limit    decimal.Decimal `json:"limit" gorm:"type:DECIMAL(20,8)" example:"400.00"`
	Spent    decimal.Decimal `json:"spent" gorm:"type:DECIMAL(20,8)" example:"123.45"`
	Period   BudgetPeriod    `json:"period" example:"monthly"`
}

func (b Budget) Self() string {
	return "Budget"
}

// BeforeSave trims the category and validates the period.
func (b *Budget) BeforeSave(_ *gorm.DB) (err error) {
	b.Category = strings.TrimSpace(b.Category)

	if b.Category == "" {
		return fmt.Errorf("the budget category must be set")
	}

	if b.Period == "" {
		b.Period = PeriodMonthly
	}

	if !b.Period.Valid() {
		return fmt.Errorf("%q is not a valid budget period", b.Period)
	}

	return
}

// Returns all budgets on this instance for export
func (Budget) Export() (json.RawMessage, error) {
	var budgets []Budget
	err := DB.Unscoped().Where(&Budget{}).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&budgets)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
