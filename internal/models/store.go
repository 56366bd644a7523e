package models

import (
	"time"

	"github.com/finanzflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AddTransaction appends a transaction to the store.
//
// Newly entered transactions always start out pending, no matter what the
// caller supplied. Confirmation happens through the pending toggle or an
// explicit update.
func AddTransaction(db *gorm.DB, transaction *Transaction) error {
	transaction.IsPending = true
	return db.Create(transaction).Error
}

// DeleteTransactionsByMonth removes every transaction dated in the given
// month. It returns the number of deleted records.
func DeleteTransactionsByMonth(db *gorm.DB, month types.Month) (int64, error) {
	res := db.
		Where("date >= ? AND date < ?", month.FirstDay(), month.AddDate(0, 1).FirstDay()).
		Delete(&Transaction{})

	return res.RowsAffected, res.Error
}

// ToggleTransactionPending flips the pending flag of a transaction in place.
//
// Toggling twice returns the transaction to its original state.
func ToggleTransactionPending(db *gorm.DB, id uuid.UUID) (Transaction, error) {
	var transaction Transaction

	err := db.First(&transaction, "id = ?", id).Error
	if err != nil {
		return Transaction{}, err
	}

	transaction.IsPending = !transaction.IsPending
	err = db.Model(&transaction).Select("IsPending").Updates(&transaction).Error
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// UpdateBaseAccountBalance overwrites the base account balance
// unconditionally.
func UpdateBaseAccountBalance(db *gorm.DB, balance decimal.Decimal) (Settings, error) {
	settings, err := GetSettings(db)
	if err != nil {
		return Settings{}, err
	}

	settings.BaseAccountBalance = balance
	err = db.Model(&settings).Select("BaseAccountBalance").Updates(&settings).Error
	if err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// UpdateTheme overwrites the stored UI theme.
func UpdateTheme(db *gorm.DB, theme Theme) (Settings, error) {
	settings, err := GetSettings(db)
	if err != nil {
		return Settings{}, err
	}

	settings.Theme = theme
	err = db.Model(&settings).Select("Theme").Updates(&settings).Error
	if err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// RecurringUpdate carries the fields a bulk series update may replace.
// Date and series linkage are never altered by a series update.
type RecurringUpdate struct {
	Amount      *decimal.Decimal `json:"amount" example:"870.00"`
	Description *string          `json:"description" example:"Miete ab Februar"`
	Category    *string          `json:"category" example:"Miete"`
	Type        *TransactionType `json:"type" example:"expense"`
}

// UpdateRecurringTransactions applies the update to every transaction that
// belongs to the series and is dated on or after the cutoff. Past instances
// are historical and stay untouched.
//
// It returns the number of updated records. The operation is not atomic
// across the matched set beyond what a single UPDATE statement provides.
func UpdateRecurringTransactions(db *gorm.DB, recurringID uuid.UUID, update RecurringUpdate, cutoff time.Time) (int64, error) {
	fields := map[string]interface{}{}

	if update.Amount != nil {
		fields["amount"] = *update.Amount
	}

	if update.Description != nil {
		fields["description"] = *update.Description
	}

	if update.Category != nil {
		fields["category"] = *update.Category
	}

	if update.Type != nil {
		fields["type"] = *update.Type
	}

	if len(fields) == 0 {
		return 0, nil
	}

	res := db.Model(&Transaction{}).
		Where("recurring_id = ? AND date >= ?", recurringID, cutoff.In(time.UTC)).
		Updates(fields)

	return res.RowsAffected, res.Error
}

// ApplyRecurringTransactions materializes every recurring template into a
// concrete transaction for the target month and returns the new instances.
func ApplyRecurringTransactions(db *gorm.DB, month types.Month) ([]Transaction, error) {
	var templates []RecurringTransaction

	err := db.Order("date(date) ASC").Find(&templates).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, 0, len(templates))
	for _, template := range templates {
		transaction := template.Materialize(month)

		err = AddTransaction(db, &transaction)
		if err != nil {
			return nil, err
		}

		transactions = append(transactions, transaction)
	}

	return transactions, nil
}
