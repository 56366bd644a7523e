package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	ffcsv "github.com/finanzflow/backend/internal/csv"
	"github.com/finanzflow/backend/internal/httputil"
	"github.com/finanzflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsImport)
		r.GET("", GetImport)

		r.OPTIONS("/csv", OptionsImportCSV)
		r.POST("/csv", ImportCSV)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsGet(c)
}

type ImportResponse struct {
	Links ImportLinks `json:"links"` // Links for the import API
}

type ImportLinks struct {
	CSV string `json:"csv" example:"https://example.com/api/v1/import/csv"` // URL of the CSV import endpoint
}

// @Summary		Import API overview
// @Description	Returns general information about the import API
// @Tags			Import
// @Success		200	{object}	ImportResponse
// @Router			/v1/import [get]
func GetImport(c *gin.Context) {
	c.JSON(http.StatusOK, ImportResponse{
		Links: ImportLinks{
			CSV: c.GetString(string(models.DBContextURL)) + "/v1/import/csv",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/csv [options]
func OptionsImportCSV(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import transactions from CSV
// @Description	Imports transactions from a semicolon-delimited CSV file. If any row is invalid, no transactions are imported.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	TransactionCreateResponse
// @Failure		400		{object}	TransactionCreateResponse
// @Failure		500		{object}	TransactionCreateResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import/csv [post]
func ImportCSV(c *gin.Context) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &s,
		})
		return
	}

	// Match rules are loaded in priority order so that the first
	// matching rule wins during categorization
	var matchRules []models.MatchRule
	err = models.DB.Order("priority ASC, match ASC").Find(&matchRules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &s,
		})
		return
	}

	transactions, err := ffcsv.Import(f, matchRules)
	if err != nil {
		// ffcsv.Import returns a usable error with the line number already
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionCreateResponse{
			Error: &s,
		})
		return
	}

	// The whole file is imported in one database transaction so that
	// a failing row does not leave a partial import behind
	data := make([]TransactionResponse, 0, len(transactions))
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for i := range transactions {
			// Imported rows keep the status stated in the file instead of
			// being forced to pending like manually entered transactions
			err := tx.Create(&transactions[i]).Error
			if err != nil {
				return err
			}

			t := newTransaction(c, transactions[i])
			data = append(data, TransactionResponse{Data: &t})
		}

		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, TransactionCreateResponse{Data: data})
}
