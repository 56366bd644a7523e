package v1

import (
	"net/http"
	"time"

	"github.com/finanzflow/backend/internal/httputil"
	"github.com/finanzflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAnalysisRoutes registers the routes for analyses with the
// RouterGroup that is passed.
func RegisterAnalysisRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/monthly", OptionsAnalysisMonthly)
		r.GET("/monthly", GetMonthlyAnalysis)

		r.OPTIONS("/yearly", OptionsAnalysisYearly)
		r.GET("/yearly", GetYearlyAnalysis)

		r.OPTIONS("/current", OptionsAnalysisCurrent)
		r.GET("/current", GetCurrentMonthAnalysis)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analysis
// @Success		204
// @Router			/v1/analysis/monthly [options]
func OptionsAnalysisMonthly(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analysis
// @Success		204
// @Router			/v1/analysis/yearly [options]
func OptionsAnalysisYearly(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analysis
// @Success		204
// @Router			/v1/analysis/current [options]
func OptionsAnalysisCurrent(c *gin.Context) {
	httputil.OptionsGet(c)
}

type AnalysisListResponse struct {
	Data  []models.MonthlyAnalysis `json:"data"`                                                   // List of monthly analyses
	Error *string                  `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

type AnalysisResponse struct {
	Error *string                 `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
	Data  *models.MonthlyAnalysis `json:"data"`                                                  // The analysis data
}

// @Summary		Monthly analysis
// @Description	Returns the confirmed-only analyses for the most recent months, the current month first
// @Tags			Analysis
// @Produce		json
// @Success		200		{object}	AnalysisListResponse
// @Failure		400		{object}	AnalysisListResponse
// @Failure		500		{object}	AnalysisListResponse
// @Param			months	query		int	false	"Number of months to analyze, ending at the current month. Defaults to 6."
// @Router			/v1/analysis/monthly [get]
func GetMonthlyAnalysis(c *gin.Context) {
	var query struct {
		Months int `form:"months,default=6"`
	}

	if err := c.BindQuery(&query); err != nil || query.Months < 1 {
		e := errMonthCountInvalid.Error()
		c.JSON(http.StatusBadRequest, AnalysisListResponse{
			Error: &e,
		})
		return
	}

	analyses, err := models.MonthlyAnalyses(models.DB, query.Months, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, AnalysisListResponse{Data: analyses})
}

// @Summary		Yearly analysis
// @Description	Returns one confirmed-only analysis per calendar month of the year, always exactly 12 entries
// @Tags			Analysis
// @Produce		json
// @Success		200		{object}	AnalysisListResponse
// @Failure		400		{object}	AnalysisListResponse
// @Failure		500		{object}	AnalysisListResponse
// @Param			year	query		int	true	"The year to analyze"
// @Router			/v1/analysis/yearly [get]
func GetYearlyAnalysis(c *gin.Context) {
	var query struct {
		Year int `form:"year"`
	}

	if err := c.BindQuery(&query); err != nil || query.Year == 0 {
		e := errYearNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, AnalysisListResponse{
			Error: &e,
		})
		return
	}

	analyses, err := models.YearlyAnalysis(models.DB, query.Year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, AnalysisListResponse{Data: analyses})
}

// @Summary		Current month analysis
// @Description	Returns the confirmed-only analysis for the current calendar month
// @Tags			Analysis
// @Produce		json
// @Success		200	{object}	AnalysisResponse
// @Failure		500	{object}	AnalysisResponse
// @Router			/v1/analysis/current [get]
func GetCurrentMonthAnalysis(c *gin.Context) {
	analyses, err := models.MonthlyAnalyses(models.DB, 1, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{Data: &analyses[0]})
}
