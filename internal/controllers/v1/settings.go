package v1

import (
	"net/http"

	"github.com/finanzflow/backend/internal/httputil"
	"github.com/finanzflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterSettingsRoutes registers the routes for the settings with the
// RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSettings)
		r.GET("", GetSettings)
		r.PATCH("", UpdateSettings)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

type SettingsEditable struct {
	Theme              *models.Theme    `json:"theme" example:"dark"`                    // The UI color scheme
	BaseAccountBalance *decimal.Decimal `json:"baseAccountBalance" example:"500.00"` // The externally verified ledger balance
}

type SettingsResponse struct {
	Error *string          `json:"error" example:"\"blue\" is not a valid theme"` // The error, if any occurred
	Data  *models.Settings `json:"data"`                                          // The settings data
}

// @Summary		Get settings
// @Description	Returns the settings. They are created with defaults on first access.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := models.GetSettings(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}

// @Summary		Update settings
// @Description	Updates the settings. Only values to be updated need to be specified. The base account balance is overwritten unconditionally when set.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	var update SettingsEditable
	err := httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	settings, err := models.GetSettings(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	if update.Theme != nil {
		settings, err = models.UpdateTheme(models.DB, *update.Theme)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SettingsResponse{
				Error: &e,
			})
			return
		}
	}

	if update.BaseAccountBalance != nil {
		settings, err = models.UpdateBaseAccountBalance(models.DB, *update.BaseAccountBalance)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SettingsResponse{
				Error: &e,
			})
			return
		}
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}
