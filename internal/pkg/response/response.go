package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"parkwash/internal/pkg/apperror"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// CustomError is used by middleware that aborts the chain itself.
func CustomError(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
}

// BadRequest answers a body that could not be bound at all.
func BadRequest(c *gin.Context, err error) {
	ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
}

// FromError maps a service error to the envelope. Unclassified errors are
// reported as 500 without leaking their text.
func FromError(c *gin.Context, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	if appErr.Kind == apperror.KindConfiguration {
		log.Printf("configuration_error severity=critical code=%s method=%s path=%s error=%q",
			appErr.Code, c.Request.Method, c.Request.URL.Path, err.Error())
	}

	status := appErr.Kind.HTTPStatus()
	if appErr.Details != nil {
		ErrorWithDetails(c, status, appErr.Code, appErr.Message, appErr.Details)
		return
	}
	Error(c, status, appErr.Code, appErr.Message)
}
