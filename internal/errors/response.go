package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body
type ErrorResponse struct {
	Error   string `json:"error"`   // error code (see codes.go)
	Message string `json:"message"` // human readable message
}

// RespondWithError writes an ErrorResponse with statusCode
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func TooManyRequests(c *gin.Context) {
	RespondWithError(c, http.StatusTooManyRequests, RateLimited, "Too many requests, slow down")
}

// SessionStoreError reports a session store failure without leaking its details
func SessionStoreError(c *gin.Context) {
	RespondWithError(c, http.StatusServiceUnavailable, InternalSessionStore, "Storefront session is temporarily unavailable")
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Something went wrong, please try again"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}
