// Package csv implements the German-format CSV codec for transactions.
package csv

import (
	"strings"

	"github.com/finanzflow/backend/internal/models"
)

// Header is the mandatory column set, in this exact order.
var Header = []string{"Status", "Datum", "Beschreibung", "Kategorie", "Betrag", "Typ", "Zahlungsart", "Wiederkehrend"}

const (
	statusConfirmed = "Bestätigt"
	statusPending   = "Ausstehend"
	typeIncome      = "Einnahme"
	typeExpense     = "Ausgabe"
	recurringYes    = "Ja"
	recurringNo     = "Nein"
)

// row maps a transaction to the CSV columns.
type row struct {
	Status        string `csv:"Status"`
	Date          string `csv:"Datum"`
	Description   string `csv:"Beschreibung"`
	Category      string `csv:"Kategorie"`
	Amount        string `csv:"Betrag"`
	Type          string `csv:"Typ"`
	PaymentMethod string `csv:"Zahlungsart"`
	Recurring     string `csv:"Wiederkehrend"`
}

// parseStatus maps the Status column to the pending flag. An empty status
// counts as pending, anything else is matched for "ausstehend".
func parseStatus(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}

	return strings.Contains(strings.ToLower(s), "ausstehend")
}

// parseType maps the Typ column to a transaction type, defaulting to
// expense when "einnahme" does not occur in the value.
func parseType(s string) models.TransactionType {
	if strings.Contains(strings.ToLower(s), "einnahme") {
		return models.TransactionTypeIncome
	}

	return models.TransactionTypeExpense
}
