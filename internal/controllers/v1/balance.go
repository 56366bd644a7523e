package v1

import (
	"net/http"
	"time"

	"github.com/finanzflow/backend/internal/httputil"
	"github.com/finanzflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterBalanceRoutes registers the routes for the current balance with
// the RouterGroup that is passed.
func RegisterBalanceRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBalance)
		r.GET("", GetBalance)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Balance
// @Success		204
// @Router			/v1/balance [options]
func OptionsBalance(c *gin.Context) {
	httputil.OptionsGet(c)
}

type BalanceResponse struct {
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  *BalanceObject `json:"data"`                                                                // The balance data
}

type BalanceObject struct {
	Balance decimal.Decimal `json:"balance" example:"560.00"` // Base account balance plus the confirmed net of the current month
}

// @Summary		Current balance
// @Description	Returns the base account balance plus the signed confirmed net of the current calendar month. Pending transactions and other months are not considered.
// @Tags			Balance
// @Produce		json
// @Success		200	{object}	BalanceResponse
// @Failure		500	{object}	BalanceResponse
// @Router			/v1/balance [get]
func GetBalance(c *gin.Context) {
	balance, err := models.CurrentBalance(models.DB, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Data: &BalanceObject{Balance: balance}})
}
