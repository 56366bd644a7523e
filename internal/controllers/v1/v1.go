// Package v1 implements the v1 API endpoints.
package v1

import (
	"net/http"

	"github.com/finanzflow/backend/internal/httputil"
	"github.com/finanzflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Transactions          string `json:"transactions" example:"https://example.com/api/v1/transactions"`                   // URL of transaction list endpoint
	RecurringTransactions string `json:"recurringTransactions" example:"https://example.com/api/v1/recurring-transactions"` // URL of recurring transaction list endpoint
	Months                string `json:"months" example:"https://example.com/api/v1/months"`                               // URL of month balance endpoint
	Analysis              string `json:"analysis" example:"https://example.com/api/v1/analysis"`                           // URL of the analysis endpoints
	Balance               string `json:"balance" example:"https://example.com/api/v1/balance"`                             // URL of the current balance endpoint
	Budgets               string `json:"budgets" example:"https://example.com/api/v1/budgets"`                             // URL of budget list endpoint
	MatchRules            string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`                      // URL of match rule list endpoint
	Settings              string `json:"settings" example:"https://example.com/api/v1/settings"`                           // URL of the settings endpoint
	Export                string `json:"export" example:"https://example.com/api/v1/export"`                               // URL of the export endpoints
	Import                string `json:"import" example:"https://example.com/api/v1/import"`                               // URL of the import endpoints
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Transactions:          url + "/v1/transactions",
			RecurringTransactions: url + "/v1/recurring-transactions",
			Months:                url + "/v1/months",
			Analysis:              url + "/v1/analysis",
			Balance:               url + "/v1/balance",
			Budgets:               url + "/v1/budgets",
			MatchRules:            url + "/v1/match-rules",
			Settings:              url + "/v1/settings",
			Export:                url + "/v1/export",
			Import:                url + "/v1/import",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// DeleteAll permanently deletes all resources
//
//	@Summary		Delete everything
//	@Description	Permanently deletes all resources
//	@Tags			v1
//	@Success		204
//	@Failure		400		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
//	@Router			/v1 [delete]
func DeleteAll(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	resources := []any{
		models.Transaction{},
		models.RecurringTransaction{},
		models.MatchRule{},
		models.Budget{},
		models.Settings{},
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			tx.Rollback()
			return
		}
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}
