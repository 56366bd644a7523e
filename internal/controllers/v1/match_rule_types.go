package v1

import (
	"fmt"

	"github.com/finanzflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type MatchRuleEditable struct {
	Priority uint   `json:"priority" example:"1"`            // The priority of the match rule, lower number means higher priority
	Match    string `json:"match" example:"REWE*"`           // The matching pattern applied to transaction descriptions, supports globbing
	Category string `json:"category" example:"Lebensmittel"` // The category set when the pattern matches
}

// model returns the database resource for the API representation of the editable fields
func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		Priority: editable.Priority,
		Match:    editable.Match,
		Category: editable.Category,
	}
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
}

// MatchRule is the representation of a MatchRule in API v1.
type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

// newMatchRule returns the API v1 representation of the resource
func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := c.GetString(string(models.DBContextURL))

	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			Priority: model.Priority,
			Match:    model.Match,
			Category: model.Category,
		},
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
		},
	}
}

type MatchRuleListResponse struct {
	Data  []MatchRule `json:"data"`                                                          // List of match rules
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MatchRuleResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *MatchRule `json:"data"`                                                          // The match rule data, if the request was successful
}
