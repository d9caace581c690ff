package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Destiny653/sayessport/internal/shared/errors"
)

// SuccessResponse is the body of an accepted submission.
type SuccessResponse struct {
	Message string `json:"message"`
}

// FailureResponse is the body of a rejected or failed request. Details holds
// the per-field error map for validation failures, or a short string
// otherwise.
type FailureResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// MessageResponse sends a 200 with a plain message payload.
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// ErrorResponse sends an error payload with the given status.
func ErrorResponse(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, FailureResponse{Error: message, Details: details})
}

// ErrorResponseWithError maps an application error onto the wire format.
// Non-AppError values collapse to a generic 500 so internals never leak.
func ErrorResponseWithError(c *gin.Context, err error, details any) {
	if appErr := errors.GetAppError(err); appErr != nil {
		ErrorResponse(c, appErr.Code, appErr.Message, details)
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred", nil)
}
