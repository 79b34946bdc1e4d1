package responses

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Fail writes an error envelope. err is included only when non-nil, so
// callers pass nil for errors whose details should stay server side.
func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// TableNotFound writes the 404 envelope for a table outside the catalog.
func TableNotFound(c *gin.Context, table string) {
	Fail(c, http.StatusNotFound, nil, fmt.Sprintf("Table '%s' not found.", table))
}

// InternalError writes a 500 envelope with a generic message. Details belong
// in the server log, not the response.
func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, nil, message)
}
