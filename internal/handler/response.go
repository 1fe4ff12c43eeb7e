package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bellezapura/salon-api/pkg/errors"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  *ErrorInfo  `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func NewSuccessResponse(data interface{}) Response {
	return Response{Status: "success", Data: data}
}

func NewErrorResponse(message string) Response {
	return Response{Status: "error", Error: &ErrorInfo{Message: message}}
}

// Error writes the HTTP rendering of a service error. Domain validation
// failures map to 422, binding failures are reported by handlers as 400.
func Error(c *gin.Context, err error) {
	var validationErr *errors.ValidationError
	if stderrors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, Response{
			Status: "error",
			Error:  &ErrorInfo{Message: validationErr.Reason, Field: validationErr.Field},
		})
		return
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		c.JSON(statusForCode(appErr.Code), NewErrorResponse(appErr.Message))
		return
	}

	c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
}

func statusForCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrBadRequest:
		return http.StatusBadRequest
	case errors.ErrUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrForbidden:
		return http.StatusForbidden
	case errors.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
