package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/finanzflow/backend/internal/controllers/v1"
	"github.com/finanzflow/backend/internal/models"
	"github.com/finanzflow/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRecurringTransactionsCreate() {
	template := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{
		Amount:      decimal.NewFromFloat(850),
		Description: "Miete",
		Category:    "Miete",
	})

	assert.Equal(suite.T(), models.IntervalMonthly, template.Data.Interval, "Interval must default to monthly")
	assert.NotEmpty(suite.T(), template.Data.Links.Self)
	assert.Contains(suite.T(), template.Data.Links.Transactions, fmt.Sprintf("/v1/transactions?recurring=%s", template.Data.ID))
}

func (suite *TestSuiteStandard) TestRecurringTransactionsCreateInvalid() {
	_ = createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{
		Amount:   decimal.NewFromFloat(850),
		Interval: "daily",
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRecurringTransactionsGet() {
	_ = createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{Amount: decimal.NewFromFloat(850)})
	_ = createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{Amount: decimal.NewFromFloat(2000), Type: models.TransactionTypeIncome})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/recurring-transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecurringTransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestRecurringTransactionsUpdate() {
	template := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{
		Amount:      decimal.NewFromFloat(850),
		Description: "Miete",
	})

	r := test.Request(suite.T(), http.MethodPatch, template.Data.Links.Self, map[string]any{
		"amount": 870,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecurringTransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(870)))
	assert.Equal(suite.T(), "Miete", response.Data.Description, "Description must not change when it is not part of the update")
}

func (suite *TestSuiteStandard) TestRecurringTransactionsDelete() {
	template := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{Amount: decimal.NewFromFloat(850)})

	r := test.Request(suite.T(), http.MethodDelete, template.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, template.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestRecurringTransactionsApply verifies that every template is materialized
// into a pending transaction on the first day of the requested month.
func (suite *TestSuiteStandard) TestRecurringTransactionsApply() {
	rent := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{
		Amount:      decimal.NewFromFloat(850),
		Description: "Miete",
	})
	_ = createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{
		Amount:      decimal.NewFromFloat(2000),
		Description: "Gehalt",
		Type:        models.TransactionTypeIncome,
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring-transactions/apply?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)

	for _, transaction := range response.Data {
		require.Nil(suite.T(), transaction.Error)
		assert.True(suite.T(), transaction.Data.IsPending)
		assert.True(suite.T(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Equal(transaction.Data.Date))
		require.NotNil(suite.T(), transaction.Data.RecurringID)
	}

	// The materialized instances are returned by the recurring filter
	r = test.Request(suite.T(), http.MethodGet, rent.Data.Links.Transactions, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	require.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), "Miete", list.Data[0].Description)
}

func (suite *TestSuiteStandard) TestRecurringTransactionsApplyNoMonth() {
	tests := []string{
		"http://example.com/v1/recurring-transactions/apply",
		"http://example.com/v1/recurring-transactions/apply?month=invalid",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestRecurringTransactionSeriesUpdate verifies the bulk update of
// materialized instances from a cutoff date on.
func (suite *TestSuiteStandard) TestRecurringTransactionSeriesUpdate() {
	template := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{
		Amount:      decimal.NewFromFloat(850),
		Description: "Miete",
	})

	for _, month := range []string{"2024-01", "2024-02", "2024-03"} {
		r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/recurring-transactions/apply?month=%s", month), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPut, template.Data.Links.Self+"/transactions", map[string]any{
		"amount":      870,
		"description": "Miete ab Februar",
		"cutoff":      "2024-02-01T00:00:00Z",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SeriesUpdateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), int64(2), response.Data.Count, "Only instances at or after the cutoff may be updated")

	var instances []models.Transaction
	require.Nil(suite.T(), models.DB.Where("recurring_id = ?", template.Data.ID).Order("date(date) ASC").Find(&instances).Error)
	require.Len(suite.T(), instances, 3)

	assert.True(suite.T(), instances[0].Amount.Equal(decimal.NewFromFloat(850)), "Instance before the cutoff must be unchanged")
	assert.True(suite.T(), instances[1].Amount.Equal(decimal.NewFromFloat(870)))
	assert.True(suite.T(), instances[2].Amount.Equal(decimal.NewFromFloat(870)))
}

func (suite *TestSuiteStandard) TestRecurringTransactionSeriesUpdateEmpty() {
	template := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{Amount: decimal.NewFromFloat(850)})

	r := test.Request(suite.T(), http.MethodPut, template.Data.Links.Self+"/transactions", map[string]any{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SeriesUpdateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), int64(0), response.Data.Count)
}

func (suite *TestSuiteStandard) TestRecurringTransactionSeriesUpdateNotFound() {
	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/v1/recurring-transactions/%s/transactions", uuid.New()), map[string]any{
		"amount": 870,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
