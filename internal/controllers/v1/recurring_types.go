package v1

import (
	"fmt"
	"time"

	"github.com/finanzflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RecurringTransactionEditable struct {
	Date time.Time `json:"date" example:"2024-01-01T00:00:00Z"` // Date of the first occurrence

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"850.00" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for each materialized transaction

	Description   string                   `json:"description" example:"Miete" default:""`                    // Description of the series
	Category      string                   `json:"category" example:"Miete" default:"Sonstiges"`              // Category label
	Type          models.TransactionType   `json:"type" example:"expense"`                                    // income or expense
	PaymentMethod string                   `json:"paymentMethod" example:"Überweisung" default:"Überweisung"` // Payment method label
	Interval      models.RecurringInterval `json:"interval" example:"monthly" default:"monthly"`              // Cadence of the series
}

// model returns the database resource for the API representation of the editable fields
func (editable RecurringTransactionEditable) model() models.RecurringTransaction {
	return models.RecurringTransaction{
		Date:          editable.Date,
		Amount:        editable.Amount,
		Description:   editable.Description,
		Category:      editable.Category,
		Type:          editable.Type,
		PaymentMethod: editable.PaymentMethod,
		Interval:      editable.Interval,
	}
}

type RecurringTransactionLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/recurring-transactions/9e30537c-b0a5-4e74-b0f1-43a8cf6c4b4a"`              // The template itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?recurring=9e30537c-b0a5-4e74-b0f1-43a8cf6c4b4a"` // Transactions materialized from this template
}

// RecurringTransaction is the representation of a recurring template in API v1.
type RecurringTransaction struct {
	models.DefaultModel
	RecurringTransactionEditable
	Links RecurringTransactionLinks `json:"links"`
}

// newRecurringTransaction returns the API v1 representation of the resource
func newRecurringTransaction(c *gin.Context, model models.RecurringTransaction) RecurringTransaction {
	url := c.GetString(string(models.DBContextURL))

	return RecurringTransaction{
		DefaultModel: model.DefaultModel,
		RecurringTransactionEditable: RecurringTransactionEditable{
			Date:          model.Date,
			Amount:        model.Amount,
			Description:   model.Description,
			Category:      model.Category,
			Type:          model.Type,
			PaymentMethod: model.PaymentMethod,
			Interval:      model.Interval,
		},
		Links: RecurringTransactionLinks{
			Self:         fmt.Sprintf("%s/v1/recurring-transactions/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?recurring=%s", url, model.ID),
		},
	}
}

type RecurringTransactionListResponse struct {
	Data  []RecurringTransaction `json:"data"`                                                          // List of recurring templates
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RecurringTransactionResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *RecurringTransaction `json:"data"`                                                          // The template data, if the request was successful
}

// SeriesUpdateResponse is the response for a bulk update of a recurring series.
type SeriesUpdateResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *SeriesCount `json:"data"`                                                          // The number of updated transactions
}

type SeriesCount struct {
	Count int64 `json:"count" example:"3"` // Number of transactions that were updated
}

// SeriesUpdate is the payload for a bulk update of a recurring series.
//
// Only the fields that are set are applied. The date of the matched
// transactions and their link to the series are never changed.
type SeriesUpdate struct {
	models.RecurringUpdate
	Cutoff *time.Time `json:"cutoff" example:"2024-02-01T00:00:00Z"` // Only transactions dated at or after this are updated. Defaults to the current time.
}
