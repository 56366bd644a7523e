package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/finanzflow/backend/internal/models"
	"github.com/finanzflow/backend/internal/types"
	"github.com/gocarina/gocsv"
)

// formatAmount renders an amount with two decimal places and a comma as
// decimal separator, e.g. "850,00".
func formatAmount(t models.Transaction) string {
	return strings.Replace(t.Amount.StringFixed(2), ".", ",", 1)
}

// Export writes transactions as semicolon-delimited CSV, sorted by date
// descending.
//
// When months is non-empty, only transactions dated in one of the given
// months are written.
func Export(w io.Writer, transactions []models.Transaction, months []types.Month) error {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if len(months) == 0 || inMonths(transaction, months) {
			filtered = append(filtered, transaction)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	rows := make([]row, 0, len(filtered))
	for _, transaction := range filtered {
		r := row{
			Status:        statusConfirmed,
			Date:          types.FormatDate(transaction.Date),
			Description:   transaction.Description,
			Category:      transaction.Category,
			Amount:        formatAmount(transaction),
			Type:          typeExpense,
			PaymentMethod: transaction.PaymentMethod,
			Recurring:     recurringNo,
		}

		if transaction.IsPending {
			r.Status = statusPending
		}

		if transaction.Type == models.TransactionTypeIncome {
			r.Type = typeIncome
		}

		if transaction.IsRecurring {
			r.Recurring = recurringYes
		}

		rows = append(rows, r)
	}

	writer := csv.NewWriter(w)
	writer.Comma = ';'

	err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer))
	if err != nil {
		return fmt.Errorf("could not write CSV: %w", err)
	}

	return nil
}

func inMonths(transaction models.Transaction, months []types.Month) bool {
	for _, month := range months {
		if month.Contains(transaction.Date) {
			return true
		}
	}

	return false
}
