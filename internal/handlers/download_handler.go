package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"sampledata/internal/repositories"
	"sampledata/internal/responses"
	"sampledata/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DownloadHandler struct {
	sampleService *services.SampleService
	logger        *zap.Logger
}

func NewDownloadHandler(sampleService *services.SampleService, logger *zap.Logger) *DownloadHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DownloadHandler{
		sampleService: sampleService,
		logger:        logger,
	}
}

// DownloadCSV handles GET /api/download/csv/:tableName
func (h *DownloadHandler) DownloadCSV(c *gin.Context) {
	tableName := c.Param("tableName")

	ds, err := h.sampleService.Generate(c.Request.Context(), tableName)
	if err != nil {
		h.fail(c, tableName, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WriteCSV(&buf, ds); err != nil {
		h.logger.Error("failed to encode csv", zap.String("table", tableName), zap.Error(err))
		responses.InternalError(c, "Failed to generate sample data")
		return
	}

	h.sampleService.RecordExport(tableName, "csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.FileName(tableName)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Preview handles GET /api/preview/:tableName and returns the generated
// rows as JSON instead of a file.
func (h *DownloadHandler) Preview(c *gin.Context) {
	tableName := c.Param("tableName")

	ds, err := h.sampleService.Generate(c.Request.Context(), tableName)
	if err != nil {
		h.fail(c, tableName, err)
		return
	}

	h.sampleService.RecordExport(tableName, "json")
	responses.Success(c, http.StatusOK, ds, "")
}

func (h *DownloadHandler) fail(c *gin.Context, tableName string, err error) {
	if errors.Is(err, repositories.ErrTableNotFound) {
		responses.TableNotFound(c, tableName)
		return
	}
	h.logger.Error("failed to generate sample data", zap.String("table", tableName), zap.Error(err))
	responses.InternalError(c, "Failed to generate sample data")
}
