package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/finanzflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecurringTransaction is a template for a recurring series. It is never
// counted in aggregations itself, only its materialized instances are.
type RecurringTransaction struct {
	DefaultModel
	Date          time.Time         `json:"date" example:"2024-01-01T00:00:00Z"` // Date of the first occurrence
	Amount        decimal.Decimal   `json:"amount" gorm:"type:DECIMAL(20,8)" example:"850.00"`
	Description   string            `json:"description" example:"Miete"`
	Category      string            `json:"category" example:"Miete"`
	Type          TransactionType   `json:"type" example:"expense"`
	PaymentMethod string            `json:"paymentMethod" example:"Überweisung"`
	Interval      RecurringInterval `json:"interval" example:"monthly"`
}

func (r RecurringTransaction) Self() string {
	return "Recurring Transaction"
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (r *RecurringTransaction) AfterFind(tx *gorm.DB) (err error) {
	err = r.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	r.Date = r.Date.In(time.UTC)
	return
}

// BeforeSave sets defaults and validates the template the same way a
// transaction is validated.
func (r *RecurringTransaction) BeforeSave(_ *gorm.DB) (err error) {
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
	r.PaymentMethod = strings.TrimSpace(r.PaymentMethod)

	if r.Category == "" {
		r.Category = DefaultCategory
	}

	if r.PaymentMethod == "" {
		r.PaymentMethod = DefaultPaymentMethod
	}

	if r.Date.IsZero() {
		r.Date = time.Now().In(time.UTC)
	} else {
		r.Date = r.Date.In(time.UTC)
	}

	if r.Amount.IsNegative() {
		return fmt.Errorf("the transaction amount must not be negative, got %s", r.Amount)
	}

	if !r.Type.Valid() {
		return fmt.Errorf("%q is not a valid transaction type", r.Type)
	}

	if r.Interval == "" {
		r.Interval = IntervalMonthly
	}

	if !r.Interval.Valid() {
		return fmt.Errorf("%q is not a valid recurring interval", r.Interval)
	}

	return
}

// Returns all recurring templates on this instance for export
func (RecurringTransaction) Export() (json.RawMessage, error) {
	var templates []RecurringTransaction
	err := DB.Unscoped().Where(&RecurringTransaction{}).Find(&templates).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&templates)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

// Materialize creates a concrete transaction instance for the target month.
//
// The instance is dated to the first day of the month, starts out pending
// and references the template through RecurringID so that future series
// edits can find it.
func (r RecurringTransaction) Materialize(month types.Month) Transaction {
	id := r.ID

	return Transaction{
		Date:          month.FirstDay(),
		Amount:        r.Amount,
		Description:   r.Description,
		Category:      r.Category,
		Type:          r.Type,
		PaymentMethod: r.PaymentMethod,
		IsPending:     true,
		IsRecurring:   false,
		RecurringID:   &id,
	}
}
