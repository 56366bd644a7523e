package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// MatchRule maps transaction descriptions to a category on CSV import.
// The Match field supports globbing, e.g. "REWE*".
type MatchRule struct {
	DefaultModel
	Priority uint   `json:"priority" example:"1"`
	Match    string `json:"match" example:"REWE*"`
	Category string `json:"category" example:"Lebensmittel"`
}

func (r MatchRule) Self() string {
	return "Match Rule"
}

// BeforeSave validates that both the pattern and the target category are set.
func (r *MatchRule) BeforeSave(_ *gorm.DB) (err error) {
	r.Match = strings.TrimSpace(r.Match)
	r.Category = strings.TrimSpace(r.Category)

	if r.Match == "" {
		return fmt.Errorf("the match pattern must be set")
	}

	if r.Category == "" {
		return fmt.Errorf("the match rule category must be set")
	}

	return
}

// Returns all match rules on this instance for export
func (MatchRule) Export() (json.RawMessage, error) {
	var matchRules []MatchRule
	err := DB.Unscoped().Where(&MatchRule{}).Find(&matchRules).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&matchRules)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
