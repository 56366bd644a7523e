package v1

import (
	"net/http"

	"github.com/finanzflow/backend/internal/httputil"
	"github.com/finanzflow/backend/internal/models"
	"github.com/finanzflow/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterMonthRoutes registers the routes for months with the RouterGroup
// that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:month", OptionsMonth)
		r.GET("/:month", GetMonth)
		r.DELETE("/:month", DeleteMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

type MonthResponse struct {
	Error *string              `json:"error" example:"the month must be specified as YYYY-MM"` // The error, if any occurred
	Data  *models.MonthBalance `json:"data"`                                                   // The balance data for the month
}

// @Summary		Get month balance
// @Description	Returns the balance calculation for the month. Income, expenses and balance only consider confirmed transactions, pending is the signed net of pending transactions.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [get]
func GetMonth(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &e,
		})
		return
	}

	balance, err := models.CalculateMonthBalance(models.DB, types.MonthOf(uri.Month))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &balance})
}

// @Summary		Delete transactions for a month
// @Description	Deletes all transactions dated in the month
// @Tags			Months
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [delete]
func DeleteMonth(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidMonth.Error(),
		})
		return
	}

	_, err := models.DeleteTransactionsByMonth(models.DB, types.MonthOf(uri.Month))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
