package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Theme is the UI color scheme stored for the frontend.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether the theme is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Settings is a single-row resource holding store-wide scalars.
//
// BaseAccountBalance is the externally verified ledger balance. It is
// independent of any transaction and must be entered manually.
type Settings struct {
	DefaultModel
	Theme              Theme           `json:"theme" example:"dark"`
	BaseAccountBalance decimal.Decimal `json:"baseAccountBalance" gorm:"type:DECIMAL(20,8)" example:"500.00"`
}

func (s Settings) Self() string {
	return "Settings"
}

// BeforeSave defaults and validates the theme.
func (s *Settings) BeforeSave(_ *gorm.DB) (err error) {
	if s.Theme == "" {
		s.Theme = ThemeDark
	}

	if !s.Theme.Valid() {
		return fmt.Errorf("%q is not a valid theme", s.Theme)
	}

	return
}

// Returns the settings on this instance for export
func (Settings) Export() (json.RawMessage, error) {
	var settings []Settings
	err := DB.Unscoped().Where(&Settings{}).Find(&settings).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&settings)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

// GetSettings returns the settings row, creating it with defaults on
// first access.
func GetSettings(db *gorm.DB) (Settings, error) {
	var settings Settings

	err := db.First(&settings).Error
	if err == nil {
		return settings, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Settings{}, err
	}

	err = db.Create(&settings).Error
	return settings, err
}
