package responses

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestSuccess(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, http.StatusOK, map[string][]string{"T": {"TID"}}, "")
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","data":{"T":["TID"]}}`, w.Body.String())
}

func TestFail(t *testing.T) {
	w := record(func(c *gin.Context) {
		Fail(c, http.StatusBadRequest, errors.New("bad input"), "Invalid request")
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Invalid request","error":"bad input"}`, w.Body.String())
}

func TestTableNotFound(t *testing.T) {
	w := record(func(c *gin.Context) { TableNotFound(c, "Foo") })
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Table 'Foo' not found."}`, w.Body.String())
}

func TestInternalError(t *testing.T) {
	w := record(func(c *gin.Context) { InternalError(c, "Failed to generate sample data") })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Failed to generate sample data"}`, w.Body.String())
}
