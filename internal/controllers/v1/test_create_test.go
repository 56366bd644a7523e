package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/finanzflow/backend/internal/controllers/v1"
	"github.com/finanzflow/backend/internal/models"
	"github.com/finanzflow/backend/test"
)

// createTestTransaction creates a test transaction via the v1 API.
func createTestTransaction(t *testing.T, transaction v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if transaction.Type == "" {
		transaction.Type = models.TransactionTypeExpense
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	reqBody := []v1.TransactionEditable{transaction}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", reqBody)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var tr v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &tr)

	return tr.Data[0]
}

// createTestRecurringTransaction creates a test recurring template via the v1 API.
func createTestRecurringTransaction(t *testing.T, template v1.RecurringTransactionEditable, expectedStatus ...int) v1.RecurringTransactionResponse {
	if template.Type == "" {
		template.Type = models.TransactionTypeExpense
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/recurring-transactions", template)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var tr v1.RecurringTransactionResponse
	test.DecodeResponse(t, &r, &tr)

	return tr
}

// createTestBudget creates a test budget via the v1 API.
func createTestBudget(t *testing.T, budget v1.BudgetEditable, expectedStatus ...int) v1.BudgetResponse {
	if budget.Category == "" {
		budget.Category = "Lebensmittel"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", budget)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var br v1.BudgetResponse
	test.DecodeResponse(t, &r, &br)

	return br
}

// createTestMatchRule creates a test match rule via the v1 API.
func createTestMatchRule(t *testing.T, matchRule v1.MatchRuleEditable, expectedStatus ...int) v1.MatchRuleResponse {
	if matchRule.Match == "" {
		matchRule.Match = "REWE*"
	}

	if matchRule.Category == "" {
		matchRule.Category = "Lebensmittel"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", matchRule)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var mr v1.MatchRuleResponse
	test.DecodeResponse(t, &r, &mr)

	return mr
}
