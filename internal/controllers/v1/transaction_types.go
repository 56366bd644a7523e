package v1

import (
	"fmt"
	"time"

	"github.com/finanzflow/backend/internal/models"
	ff_uuid "github.com/finanzflow/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date time.Time `json:"date" example:"2024-01-15T00:00:00Z"` // Date of the transaction. Time is currently only used for sorting

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"850.00" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Description       string                   `json:"description" example:"Miete Januar" default:""`               // Description of the transaction
	Category          string                   `json:"category" example:"Miete" default:"Sonstiges"`                // Category label
	Type              models.TransactionType   `json:"type" example:"expense"`                                      // income or expense
	PaymentMethod     string                   `json:"paymentMethod" example:"Überweisung" default:"Überweisung"`   // Payment method label
	IsPending         bool                     `json:"isPending" example:"true" default:"true"`                     // Is the transaction still pending?
	IsRecurring       bool                     `json:"isRecurring" example:"false" default:"false"`                 // Is the transaction part of a recurring series?
	RecurringInterval models.RecurringInterval `json:"recurringInterval" example:"monthly"`                         // Interval of the series, only meaningful with isRecurring
	RecurringID       *uuid.UUID               `json:"recurringId" example:"9e30537c-b0a5-4e74-b0f1-43a8cf6c4b4a"`  // ID of the recurring template this transaction was created from
	Receipt           string                   `json:"receipt" default:""`                                          // Reference to an attached document
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:              editable.Date,
		Amount:            editable.Amount,
		Description:       editable.Description,
		Category:          editable.Category,
		Type:              editable.Type,
		PaymentMethod:     editable.PaymentMethod,
		IsPending:         editable.IsPending,
		IsRecurring:       editable.IsRecurring,
		RecurringInterval: editable.RecurringInterval,
		RecurringID:       editable.RecurringID,
		Receipt:           editable.Receipt,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:              model.Date,
			Amount:            model.Amount,
			Description:       model.Description,
			Category:          model.Category,
			Type:              model.Type,
			PaymentMethod:     model.PaymentMethod,
			IsPending:         model.IsPending,
			IsRecurring:       model.IsRecurring,
			RecurringInterval: model.RecurringInterval,
			RecurringID:       model.RecurringID,
			Receipt:           model.Receipt,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Date          time.Time                `form:"date" filterField:"false"`      // Exact date. Time is ignored.
	FromDate      time.Time                `form:"fromDate" filterField:"false"`  // From this date. Time is ignored.
	UntilDate     time.Time                `form:"untilDate" filterField:"false"` // Until this date. Time is ignored.
	Amount        decimal.Decimal          `form:"amount"`                        // Exact amount
	Description   string                   `form:"description" filterField:"false"` // Description contains this string
	Category      string                   `form:"category"`                      // Category label
	Type          models.TransactionType   `form:"type"`                          // income or expense
	PaymentMethod string                   `form:"paymentMethod"`                 // Payment method label
	IsPending     bool                     `form:"isPending"`                     // Is the transaction still pending?
	IsRecurring   bool                     `form:"isRecurring"`                   // Is the transaction part of a recurring series?
	RecurringID   ff_uuid.UUID             `form:"recurring" filterField:"false"` // ID of the recurring template
	Offset        uint                     `form:"offset" filterField:"false"`    // The offset of the first Transaction returned. Defaults to 0.
	Limit         int                      `form:"limit" filterField:"false"`     // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// This does not set the string or date fields since they are
	// handled in the controller function
	return TransactionEditable{
		Amount:        f.Amount,
		Category:      f.Category,
		Type:          f.Type,
		PaymentMethod: f.PaymentMethod,
		IsPending:     f.IsPending,
		IsRecurring:   f.IsRecurring,
	}.model()
}
