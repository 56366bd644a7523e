package v1

import (
	"fmt"

	"github.com/finanzflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Category string              `json:"category" example:"Lebensmittel"`                    // The category the budget applies to
	Limit    decimal.Decimal     `json:"limit" example:"400.00"`                             // The spending limit
	Spent    decimal.Decimal     `json:"spent" example:"123.45"`                             // Amount spent, recomputed by callers from the analysis endpoints
	Period   models.BudgetPeriod `json:"period" example:"monthly" default:"monthly"`         // monthly or yearly
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Category: editable.Category,
		Limit:    editable.Limit,
		Spent:    editable.Spent,
		Period:   editable.Period,
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget itself
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Category: model.Category,
			Limit:    model.Limit,
			Spent:    model.Spent,
			Period:   model.Period,
		},
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                              // List of budgets
	Error *string  `json:"error" example:"there already is a budget for this category"` // The error, if any occurred
}

type BudgetResponse struct {
	Error *string `json:"error" example:"there already is a budget for this category"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                        // The budget data, if the request was successful
}
