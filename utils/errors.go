package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError 带 HTTP 状态码的业务错误
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

func NewUnavailableError(message string) *AppError {
	return &AppError{Status: http.StatusServiceUnavailable, Message: message}
}

// RespondAppError 在控制器边界统一映射错误，未识别的一律 500
func RespondAppError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondError(c, appErr.Status, appErr.Message)
		return
	}
	RespondError(c, http.StatusInternalServerError, err.Error())
}
