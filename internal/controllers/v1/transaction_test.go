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

// TestTransactionsOptions verifies that the HTTP OPTIONS response for /transactions/{id} is correct.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			uuid.New().String(),
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(31)}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestTransactionsCreatePending verifies that new transactions always start
// out pending, no matter what the client sends.
func (suite *TestSuiteStandard) TestTransactionsCreatePending() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:    decimal.NewFromFloat(17.23),
		IsPending: false,
	})

	assert.True(suite.T(), transaction.Data.IsPending, "Creation must force the pending state")
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaults() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:      decimal.NewFromFloat(850),
		Description: "Miete Januar",
	})

	assert.Equal(suite.T(), models.DefaultCategory, transaction.Data.Category)
	assert.Equal(suite.T(), models.DefaultPaymentMethod, transaction.Data.PaymentMethod)
	assert.NotEmpty(suite.T(), transaction.Data.Links.Self)
}

// TestTransactionsCreateErrors verifies that the response status is the
// highest status any of the submitted transactions produced.
func (suite *TestSuiteStandard) TestTransactionsCreateErrors() {
	reqBody := []v1.TransactionEditable{
		{Amount: decimal.NewFromFloat(17.23), Type: models.TransactionTypeExpense},
		{Amount: decimal.NewFromFloat(10), Type: "transfer"},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", reqBody)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var tr v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &tr)
	require.Len(suite.T(), tr.Data, 2)

	assert.Nil(suite.T(), tr.Data[0].Error)
	require.NotNil(suite.T(), tr.Data[1].Error)
	assert.Contains(suite.T(), *tr.Data[1].Error, "not a valid transaction type")
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalidBody() {
	tests := []struct {
		name string
		body string
	}{
		{"Broken JSON", `{ broken`},
		{"Not a list", `{ "amount": 17.23 }`},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:      decimal.NewFromFloat(850),
		Description: "Miete Januar",
	})

	r := test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), transaction.Data.ID, response.Data.ID)
	assert.Equal(suite.T(), "Miete Januar", response.Data.Description)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilters() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromFloat(850),
		Description: "Miete Januar",
		Category:    "Miete",
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:        time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromFloat(42),
		Description: "Kino",
		Category:    "Unterhaltung",
		Type:        models.TransactionTypeExpense,
	})

	tests := []struct {
		query string
		count int
	}{
		{"category=Miete", 1},
		{"category=Unterhaltung", 1},
		{"category=Transport", 0},
		{"description=Miete", 1},
		{"description=ino", 1},
		{"amount=850", 1},
		{"fromDate=2024-02-01T00:00:00Z", 1},
		{"untilDate=2024-01-31T00:00:00Z", 1},
		{"date=2024-01-15T00:00:00Z", 1},
		{"", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsPagination() {
	for i := 0; i < 3; i++ {
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(float64(i + 1))})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?offset=1&limit=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), uint(1), response.Pagination.Offset)
	assert.Equal(suite.T(), 1, response.Pagination.Limit)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:      decimal.NewFromFloat(850),
		Description: "Miete Januar",
	})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"description": "Miete Februar",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Miete Februar", response.Data.Description)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(850)), "Amount must not change when it is not part of the update")
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFails() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(10)})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Invalid UUID", "http://example.com/v1/transactions/NotAUUID", "", http.StatusBadRequest},
		{"Does not exist", fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "", http.StatusNotFound},
		{"Invalid type", transaction.Data.Links.Self, map[string]any{"type": "transfer"}, http.StatusBadRequest},
		{"Broken JSON", transaction.Data.Links.Self, `{ broken`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(10)})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsTogglePending() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(10)})
	require.True(suite.T(), transaction.Data.IsPending)

	path := transaction.Data.Links.Self + "/toggle-pending"

	r := test.Request(suite.T(), http.MethodPost, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.False(suite.T(), response.Data.IsPending)

	// Toggling again restores the original state
	r = test.Request(suite.T(), http.MethodPost, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.IsPending)
}

func (suite *TestSuiteStandard) TestTransactionsTogglePendingNotFound() {
	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/transactions/%s/toggle-pending", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestTransactionsDatabaseError verifies that the endpoints return the appropriate
// error when the database is disconnected.
func (suite *TestSuiteStandard) TestTransactionsDatabaseError() {
	tests := []struct {
		name   string // Name of the test
		path   string // Path to send request to
		method string // HTTP method to use
	}{
		{"GET Collection", "", http.MethodGet},
		{"OPTIONS Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodOptions},
		{"GET Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodGet},
		{"PATCH Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodPatch},
		{"DELETE Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/transactions%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
		})
	}
}
