package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"time"

	ffcsv "github.com/finanzflow/backend/internal/csv"
	"github.com/finanzflow/backend/internal/httputil"
	"github.com/finanzflow/backend/internal/models"
	"github.com/finanzflow/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// StoreName is the namespace of the exported state blob. Clients use it to
// match an export against their persisted local state.
const StoreName = "finanz-flow"

var backendVersion string

// RegisterExportRoutes registers the routes for exports.
func RegisterExportRoutes(r *gin.RouterGroup, version string) {
	backendVersion = version

	{
		r.OPTIONS("", OptionsExport)
		r.GET("", GetExport)

		r.OPTIONS("/csv", OptionsExportCSV)
		r.GET("/csv", GetExportCSV)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export/csv [options]
func OptionsExportCSV(c *gin.Context) {
	httputil.OptionsGet(c)
}

type ExportResponse struct {
	Name         string                     `json:"name" example:"finanz-flow"`                 // The name of the store
	Version      string                     `json:"version" example:"1.1.0"`                    // The version of the backend the export was created with
	CreationTime time.Time                  `json:"creationTime" example:"2024-01-15T00:00:00Z"` // Time the export was created
	Data         map[string]json.RawMessage `json:"data"`                                       // The exported resources, keyed by resource name
	Error        *string                    `json:"error"`                                      // The error, if any occurred
}

// @Summary		Export
// @Description	Exports all resources for the instance
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	ExportResponse
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	resources := make(map[string]json.RawMessage)

	for _, model := range models.Registry {
		b, err := model.Export()
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ExportResponse{
				Error: &e,
			})
			return
		}

		resources[reflect.TypeOf(model).Name()] = b
	}

	c.JSON(http.StatusOK, ExportResponse{
		Name:         StoreName,
		Version:      backendVersion,
		Data:         resources,
		CreationTime: time.Now(),
	})
}

// @Summary		CSV export
// @Description	Exports transactions as semicolon-delimited CSV, sorted by date descending. The month parameter can be repeated to restrict the export to specific months.
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			month	query	[]string	false	"Restrict the export to these months, in YYYY-MM format"	collectionFormat(multi)
// @Router			/v1/export/csv [get]
func GetExportCSV(c *gin.Context) {
	months := make([]types.Month, 0)
	for _, raw := range c.QueryArray("month") {
		month, err := types.ParseMonth(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{
				Error: httputil.ErrInvalidMonth.Error(),
			})
			return
		}

		months = append(months, month)
	}

	var transactions []models.Transaction
	err := models.DB.Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-%s.csv", StoreName, time.Now().Format("2006-01-02")))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	err = ffcsv.Export(c.Writer, transactions, months)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}
}
