package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform success envelope. Success is derived from
// the status code, never set independently.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

// ErrorResponse is the uniform error envelope. Errors carries field
// level detail when a request body fails validation.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors,omitempty"`
}

func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		StatusCode: http.StatusOK,
		Success:    true,
		Message:    message,
		Data:       data,
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		StatusCode: http.StatusCreated,
		Success:    true,
		Message:    message,
		Data:       data,
	})
}

func Fail(c *gin.Context, statusCode int, message string, errs ...string) {
	c.JSON(statusCode, ErrorResponse{
		StatusCode: statusCode,
		Success:    false,
		Message:    message,
		Errors:     errs,
	})
}

func BadRequest(c *gin.Context, message string, errs ...string) {
	Fail(c, http.StatusBadRequest, message, errs...)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, message)
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}
