package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType classifies a transaction as money coming in or going out.
// The sign of the amount is carried by the type, amounts themselves are
// always positive.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Signed returns the amount with the sign implied by the type.
func (t TransactionType) Signed(amount decimal.Decimal) decimal.Decimal {
	if t == TransactionTypeExpense {
		return amount.Neg()
	}

	return amount
}

// Valid reports whether the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Categories are the categories known to the UI. Imports accept arbitrary
// categories, this list is used for defaults and match rule suggestions.
var Categories = []string{
	"Gehalt",
	"Miete",
	"Lebensmittel",
	"Transport",
	"Unterhaltung",
	"Versicherung",
	"Gesundheit",
	"Bildung",
	"Kleidung",
	"Sonstiges",
}

// PaymentMethods are the payment methods known to the UI.
var PaymentMethods = []string{
	"Bargeld",
	"Überweisung",
	"Kreditkarte",
	"PayPal",
	"Lastschrift",
	"Sonstiges",
}

const (
	DefaultCategory      = "Sonstiges"
	DefaultPaymentMethod = "Überweisung"
)

// RecurringInterval is the cadence of a recurring series.
type RecurringInterval string

const (
	IntervalMonthly RecurringInterval = "monthly"
	IntervalWeekly  RecurringInterval = "weekly"
	IntervalYearly  RecurringInterval = "yearly"
)

// Valid reports whether the interval is one of the known cadences.
func (i RecurringInterval) Valid() bool {
	return i == IntervalMonthly || i == IntervalWeekly || i == IntervalYearly
}

// Transaction is a single dated income or expense.
type Transaction struct {
	DefaultModel
	Date              time.Time         `json:"date" example:"2024-01-15T00:00:00Z"`
	Amount            decimal.Decimal   `json:"amount" gorm:"type:DECIMAL(20,8)" example:"850.00"` // Always positive, the type carries the sign
	Description       string            `json:"description" example:"Miete Januar"`
	Category          string            `json:"category" example:"Miete"`
	Type              TransactionType   `json:"type" example:"expense"`
	PaymentMethod     string            `json:"paymentMethod" example:"Überweisung"`
	IsPending         bool              `json:"isPending" example:"true"`  // Pending transactions are excluded from the confirmed balance
	IsRecurring       bool              `json:"isRecurring" example:"false"`
	RecurringInterval RecurringInterval `json:"recurringInterval,omitempty" example:"monthly"`              // Only meaningful when IsRecurring is set
	RecurringID       *uuid.UUID        `json:"recurringId" example:"9e30537c-b0a5-4e74-b0f1-43a8cf6c4b4a"` // Set on instances materialized from a recurring series
	Receipt           string            `json:"receipt,omitempty"`                                          // Reference to an attached document, opaque to the backend
}

func (t Transaction) Self() string {
	return "Transaction"
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - trims whitespace from string fields
//   - defaults empty category and payment method
//   - rejects negative amounts and unknown types
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)
	t.PaymentMethod = strings.TrimSpace(t.PaymentMethod)

	if t.Category == "" {
		t.Category = DefaultCategory
	}

	if t.PaymentMethod == "" {
		t.PaymentMethod = DefaultPaymentMethod
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.Amount.IsNegative() {
		return fmt.Errorf("the transaction amount must not be negative, got %s", t.Amount)
	}

	if !t.Type.Valid() {
		return fmt.Errorf("%q is not a valid transaction type", t.Type)
	}

	if t.RecurringInterval != "" && !t.RecurringInterval.Valid() {
		return fmt.Errorf("%q is not a valid recurring interval", t.RecurringInterval)
	}

	// Ensure that the RecurringID is nil and not a pointer to a nil UUID
	if t.RecurringID != nil && *t.RecurringID == uuid.Nil {
		t.RecurringID = nil
	}

	return
}

// Returns all transactions on this instance for export
func (Transaction) Export() (json.RawMessage, error) {
	var transactions []Transaction
	err := DB.Unscoped().Where(&Transaction{}).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&transactions)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
