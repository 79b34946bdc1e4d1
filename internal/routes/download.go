package routes

import (
	"sampledata/internal/handlers"

	"github.com/gin-gonic/gin"
)

type DownloadRoutes struct {
	handler *handlers.DownloadHandler
}

func NewDownloadRoutes(handler *handlers.DownloadHandler) *DownloadRoutes {
	return &DownloadRoutes{handler: handler}
}

func (r *DownloadRoutes) RegisterRoutes(router *gin.RouterGroup) {
	download := router.Group("/download")
	{
		download.GET("/csv/:tableName", r.handler.DownloadCSV)
	}
	router.GET("/preview/:tableName", r.handler.Preview)
}
