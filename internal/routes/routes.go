package routes

import (
	"net/http"

	"sampledata/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, schemaHandler *handlers.SchemaHandler, downloadHandler *handlers.DownloadHandler) {
	api := router.Group("/api")

	schemaRoutes := NewSchemaRoutes(schemaHandler)
	schemaRoutes.RegisterRoutes(api)

	downloadRoutes := NewDownloadRoutes(downloadHandler)
	downloadRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
