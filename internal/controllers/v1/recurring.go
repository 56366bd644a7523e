package v1

import (
	"net/http"
	"time"

	"github.com/finanzflow/backend/internal/httputil"
	"github.com/finanzflow/backend/internal/models"
	"github.com/finanzflow/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterRecurringTransactionRoutes registers the routes for recurring
// transactions with the RouterGroup that is passed.
func RegisterRecurringTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecurringTransactions)
		r.GET("", GetRecurringTransactions)
		r.POST("", CreateRecurringTransactions)
	}

	// Materialization for a month
	{
		r.OPTIONS("/apply", OptionsRecurringTransactionsApply)
		r.POST("/apply", ApplyRecurringTransactions)
	}

	// Recurring transaction with ID
	{
		r.OPTIONS("/:id", OptionsRecurringTransactionDetail)
		r.GET("/:id", GetRecurringTransaction)
		r.PATCH("/:id", UpdateRecurringTransaction)
		r.DELETE("/:id", DeleteRecurringTransaction)
	}

	// Bulk update of the materialized series
	{
		r.OPTIONS("/:id/transactions", OptionsRecurringTransactionSeries)
		r.PUT("/:id/transactions", UpdateRecurringTransactionSeries)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringTransactions
// @Success		204
// @Router			/v1/recurring-transactions [options]
func OptionsRecurringTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringTransactions
// @Success		204
// @Router			/v1/recurring-transactions/apply [options]
func OptionsRecurringTransactionsApply(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringTransactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-transactions/{id} [options]
func OptionsRecurringTransactionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.RecurringTransaction{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringTransactions
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-transactions/{id}/transactions [options]
func OptionsRecurringTransactionSeries(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Get recurring transaction
// @Description	Returns a specific recurring transaction template
// @Tags			RecurringTransactions
// @Produce		json
// @Success		200	{object}	RecurringTransactionResponse
// @Failure		400	{object}	RecurringTransactionResponse
// @Failure		404	{object}	RecurringTransactionResponse
// @Failure		500	{object}	RecurringTransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-transactions/{id} [get]
func GetRecurringTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &e,
		})
		return
	}

	var template models.RecurringTransaction
	err = models.DB.First(&template, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &e,
		})
		return
	}

	data := newRecurringTransaction(c, template)
	c.JSON(http.StatusOK, RecurringTransactionResponse{Data: &data})
}

// @Summary		Get recurring transactions
// @Description	Returns the list of recurring transaction templates
// @Tags			RecurringTransactions
// @Produce		json
// @Success		200	{object}	RecurringTransactionListResponse
// @Failure		500	{object}	RecurringTransactionListResponse
// @Router			/v1/recurring-transactions [get]
func GetRecurringTransactions(c *gin.Context) {
	var templates []models.RecurringTransaction
	err := models.DB.Order("datetime(date) ASC").Find(&templates).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringTransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]RecurringTransaction, 0)
	for _, template := range templates {
		data = append(data, newRecurringTransaction(c, template))
	}

	c.JSON(http.StatusOK, RecurringTransactionListResponse{Data: data})
}

// @Summary		Create recurring transaction
// @Description	Creates a new recurring transaction template
// @Tags			RecurringTransactions
// @Produce		json
// @Success		201			{object}	RecurringTransactionResponse
// @Failure		400			{object}	RecurringTransactionResponse
// @Failure		500			{object}	RecurringTransactionResponse
// @Param			template	body		RecurringTransactionEditable	true	"Recurring transaction"
// @Router			/v1/recurring-transactions [post]
func CreateRecurringTransactions(c *gin.Context) {
	var editable RecurringTransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &e,
		})
		return
	}

	template := editable.model()
	err = models.DB.Create(&template).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &e,
		})
		return
	}

	data := newRecurringTransaction(c, template)
	c.JSON(http.StatusCreated, RecurringTransactionResponse{Data: &data})
}

// @Summary		Update recurring transaction
// @Description	Updates an existing recurring transaction template. Only values to be updated need to be specified. Already materialized transactions are not changed, use the series update for that.
// @Tags			RecurringTransactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	RecurringTransactionResponse
// @Failure		400			{object}	RecurringTransactionResponse
// @Failure		404			{object}	RecurringTransactionResponse
// @Failure		500			{object}	RecurringTransactionResponse
// @Param			id			path		URIID							true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			template	body		RecurringTransactionEditable	true	"Recurring transaction"
// @Router			/v1/recurring-transactions/{id} [patch]
func UpdateRecurringTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &e,
		})
		return
	}

	var template models.RecurringTransaction
	err = models.DB.First(&template, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecurringTransactionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &e,
		})
		return
	}

	var update RecurringTransactionEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &e,
		})
		return
	}

	if update.Amount.IsZero() {
		update.Amount = template.Amount
	}

	if update.Type == "" {
		update.Type = template.Type
	}

	if update.Interval == "" {
		update.Interval = template.Interval
	}

	err = models.DB.Model(&template).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringTransactionResponse{
			Error: &e,
		})
		return
	}

	data := newRecurringTransaction(c, template)
	c.JSON(http.StatusOK, RecurringTransactionResponse{Data: &data})
}

// @Summary		Delete recurring transaction
// @Description	Deletes a recurring transaction template. Transactions that were already materialized from it are kept.
// @Tags			RecurringTransactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-transactions/{id} [delete]
func DeleteRecurringTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var template models.RecurringTransaction
	err = models.DB.First(&template, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&template).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Update the materialized series
// @Description	Updates all transactions that were materialized from this template and are dated at or after the cutoff. Past transactions are never changed.
// @Tags			RecurringTransactions
// @Accept			json
// @Produce		json
// @Success		200		{object}	SeriesUpdateResponse
// @Failure		400		{object}	SeriesUpdateResponse
// @Failure		404		{object}	SeriesUpdateResponse
// @Failure		500		{object}	SeriesUpdateResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			update	body		SeriesUpdate	true	"Fields to update"
// @Router			/v1/recurring-transactions/{id}/transactions [put]
func UpdateRecurringTransactionSeries(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SeriesUpdateResponse{
			Error: &e,
		})
		return
	}

	// The template has to exist for a series update
	var template models.RecurringTransaction
	err = models.DB.First(&template, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SeriesUpdateResponse{
			Error: &e,
		})
		return
	}

	var update SeriesUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SeriesUpdateResponse{
			Error: &e,
		})
		return
	}

	cutoff := time.Now().In(time.UTC)
	if update.Cutoff != nil {
		cutoff = *update.Cutoff
	}

	count, err := models.UpdateRecurringTransactions(models.DB, template.ID, update.RecurringUpdate, cutoff)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SeriesUpdateResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SeriesUpdateResponse{Data: &SeriesCount{Count: count}})
}

// @Summary		Materialize recurring transactions
// @Description	Creates one pending transaction on the first day of the given month for every recurring template
// @Tags			RecurringTransactions
// @Produce		json
// @Success		201		{object}	TransactionCreateResponse
// @Failure		400		{object}	TransactionCreateResponse
// @Failure		500		{object}	TransactionCreateResponse
// @Param			month	query		string	true	"The month to materialize the templates for, in YYYY-MM format"
// @Router			/v1/recurring-transactions/apply [post]
func ApplyRecurringTransactions(c *gin.Context) {
	var query QueryMonth
	if err := c.BindQuery(&query); err != nil || query.Month.IsZero() {
		e := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	month := types.MonthOf(query.Month)

	transactions, err := models.ApplyRecurringTransactions(models.DB, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	r := TransactionCreateResponse{}
	for _, transaction := range transactions {
		data := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(http.StatusCreated, r)
}
