package v1_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/finanzflow/backend/internal/controllers/v1"
	"github.com/finanzflow/backend/internal/models"
	"github.com/finanzflow/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// csvHeader is the header line every import file must start with.
const csvHeader = "Status;Datum;Beschreibung;Kategorie;Betrag;Typ;Zahlungsart;Wiederkehrend\n"

func (suite *TestSuiteStandard) TestImportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/import/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestImportGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), test.APIURL+"/v1/import/csv", response.Links.CSV)
}

// TestImportCSV verifies a successful import of a German CSV file.
func (suite *TestSuiteStandard) TestImportCSV() {
	body, headers := test.UploadFile(suite.T(), "umsaetze.csv", csvHeader+
		"Bestätigt;15. Januar 2024;Miete Januar;Miete;850,00;Ausgabe;Überweisung;Nein\n"+
		";20. Januar 2024;Gehalt;Gehalt;2000,00;Einnahme;Überweisung;Ja\n")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/csv", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)

	rent := response.Data[0].Data
	require.NotNil(suite.T(), rent)
	assert.Equal(suite.T(), "Miete Januar", rent.Description)
	assert.True(suite.T(), rent.Amount.Equal(decimal.NewFromFloat(850)))
	assert.Equal(suite.T(), models.TransactionTypeExpense, rent.Type)
	assert.False(suite.T(), rent.IsPending)
	assert.True(suite.T(), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).Equal(rent.Date))

	salary := response.Data[1].Data
	require.NotNil(suite.T(), salary)
	assert.Equal(suite.T(), models.TransactionTypeIncome, salary.Type)
	assert.True(suite.T(), salary.IsPending, "An empty status defaults to pending")
	assert.True(suite.T(), salary.IsRecurring)

	// Both transactions are persisted
	listRecorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &listRecorder, http.StatusOK)

	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &listRecorder, &list)
	assert.Len(suite.T(), list.Data, 2)
}

// TestImportCSVInvalidRow verifies that a single bad row aborts the whole
// import and nothing is persisted.
func (suite *TestSuiteStandard) TestImportCSVInvalidRow() {
	body, headers := test.UploadFile(suite.T(), "umsaetze.csv", csvHeader+
		"Bestätigt;15. Januar 2024;Miete;Miete;850,00;Ausgabe;Überweisung;Nein\n"+
		"Bestätigt;16. Januar 2024;Kaputt;Sonstiges;nicht-zahl;Ausgabe;Bar;Nein\n")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import/csv", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, "error in line 3 of the CSV")

	// Nothing may be persisted
	listRecorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &listRecorder, http.StatusOK)

	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &listRecorder, &list)
	assert.Len(suite.T(), list.Data, 0)
}

func (suite *TestSuiteStandard) TestImportCSVFails() {
	tests := []struct {
		name          string
		fileName      string
		content       string
		expectedError string
	}{
		{"No file", "", "", "you must send a file to this endpoint"},
		{"Wrong suffix", "umsaetze.txt", csvHeader, "this endpoint only supports files of the following types: .csv"},
		{"Wrong header", "umsaetze.csv", "Date,Amount\n", "the CSV header must be exactly"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var r httptest.ResponseRecorder
			if tt.fileName == "" {
				r = test.Request(t, http.MethodPost, "http://example.com/v1/import/csv", "")
			} else {
				body, headers := test.UploadFile(t, tt.fileName, tt.content)
				r = test.Request(t, http.MethodPost, "http://example.com/v1/import/csv", body, headers)
			}

			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.expectedError)
		})
	}
}
