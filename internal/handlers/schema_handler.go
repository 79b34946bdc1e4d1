package handlers

import (
	"net/http"

	"sampledata/internal/responses"
	"sampledata/internal/services"

	"github.com/gin-gonic/gin"
)

type SchemaHandler struct {
	sampleService *services.SampleService
}

func NewSchemaHandler(sampleService *services.SampleService) *SchemaHandler {
	return &SchemaHandler{
		sampleService: sampleService,
	}
}

// GetSchema handles GET /api/schema
func (h *SchemaHandler) GetSchema(c *gin.Context) {
	responses.Success(c, http.StatusOK, h.sampleService.Schema(), "")
}
