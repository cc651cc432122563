package handlers

import (
	"fmt"
	"net/http"

	request "sistema_mdu/internal/adapter/http/dto/request"
	"sistema_mdu/internal/usecase"
	"sistema_mdu/pkg"

	"github.com/gin-gonic/gin"
)

// maxImportBytes bounds the request body of an import.
const maxImportBytes = 32 << 20

type ImportExportHandler struct {
	usecase usecase.IImportExportUseCase
}

func NewImportExportHandler(uc usecase.IImportExportUseCase) *ImportExportHandler {
	return &ImportExportHandler{usecase: uc}
}

// Import godoc
// @Summary Import addresses
// @Description Adds every record of the body. Records are independent: a failed record does not stop the batch.
// @Tags transfer
// @Accept json
// @Accept text/csv
// @Accept application/yaml
// @Produce json
// @Security BearerAuth
// @Param format query string false "json (default), csv or yaml"
// @Param report query bool false "Return per-record outcomes"
// @Success 200 {object} response.ImportResponse
// @Success 207 {object} response.ImportReportResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /v1/import [post]
func (h *ImportExportHandler) Import(c *gin.Context) {
	var q request.TransferQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	format, err := q.ResolveFormat()
	if err != nil {
		appErr := mapError(&pkg.ValidationError{Field: "format", Reason: err.Error()})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	records, err := usecase.DecodeRecords(format, http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes))
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if q.Report {
		res := h.usecase.ImportReport(c.Request.Context(), records)
		status := http.StatusOK
		if res.Success && len(res.Data.Failures) > 0 {
			status = http.StatusMultiStatus
		}
		respond(c, status, res)
		return
	}
	respond(c, http.StatusOK, h.usecase.ImportBatch(c.Request.Context(), records))
}

// Export godoc
// @Summary Export addresses
// @Description Serialises every address. The file is returned as an attachment unless object storage is configured, in which case its location is returned.
// @Tags transfer
// @Produce json
// @Produce text/csv
// @Produce application/yaml
// @Security BearerAuth
// @Param format query string false "json (default), csv or yaml"
// @Success 200 {object} response.ExportResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /v1/export [get]
func (h *ImportExportHandler) Export(c *gin.Context) {
	var q request.TransferQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	format, err := q.ResolveFormat()
	if err != nil {
		appErr := mapError(&pkg.ValidationError{Field: "format", Reason: err.Error()})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := h.usecase.Export(c.Request.Context(), format)
	if !res.Success || res.Data.Location != "" {
		respond(c, http.StatusOK, res)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Data.Filename))
	c.Data(http.StatusOK, res.Data.ContentType, res.Data.Content)
}
