package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appcustomer "github.com/custdesk/backend/internal/application/customer"
	"github.com/custdesk/backend/internal/domain/shared"
	applogger "github.com/custdesk/backend/internal/infrastructure/logger"
	"github.com/custdesk/backend/internal/interfaces/http/dto"
)

// BaseHandler provides response helpers shared by all handlers.
type BaseHandler struct{}

// OK writes a 200 response with the given message and payload.
func (h *BaseHandler) OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(message, data))
}

// Created writes a 201 response with the given message and payload.
func (h *BaseHandler) Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(message, data))
}

// BadRequest writes a 400 response with a single error detail.
func (h *BaseHandler) BadRequest(c *gin.Context, message, detail string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message, detail))
}

// ValidationFailed writes a 400 response carrying a list of violations.
func (h *BaseHandler) ValidationFailed(c *gin.Context, message string, violations []string) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(message, violations))
}

// NotFound writes a 404 response with a single error detail.
func (h *BaseHandler) NotFound(c *gin.Context, message, detail string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(message, detail))
}

// Internal writes a 500 response with a single error detail.
func (h *BaseHandler) Internal(c *gin.Context, message, detail string) {
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(message, detail))
}

// BindJSON binds the request body into obj and, on failure, writes a 400
// response listing the binding violations. Returns false if binding failed.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.ValidationFailed(c, "Validation failed", formatBindingErrors(err))
		return false
	}
	return true
}

// HandleError maps service-layer errors onto the wire envelope.
// fallback is the generic message used for unexpected failures.
func (h *BaseHandler) HandleError(c *gin.Context, err error, fallback string) {
	var hostErr *appcustomer.ValidationError
	if errors.As(err, &hostErr) {
		c.JSON(http.StatusBadRequest, dto.NewHostRejectionResponse(
			"Host validation failed", hostErr.Message, hostErr.Violations))
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		switch {
		case domainErr.Code == "NOT_FOUND":
			h.NotFound(c, "Customer not found", domainErr.Message)
		case domainErr.Code == "ALREADY_EXISTS":
			h.BadRequest(c, "Tax ID already exists", domainErr.Message)
		case strings.HasPrefix(domainErr.Code, "INVALID_"):
			h.ValidationFailed(c, "Validation failed", []string{domainErr.Message})
		default:
			applogger.GetGinLogger(c).Error("Unhandled domain error",
				zap.String("code", domainErr.Code), zap.Error(err))
			h.Internal(c, fallback, domainErr.Message)
		}
		return
	}

	applogger.GetGinLogger(c).Error("Request failed", zap.Error(err))
	h.Internal(c, fallback, err.Error())
}

// formatBindingErrors turns a gin binding error into readable violations.
func formatBindingErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, describeFieldError(fe))
	}
	return out
}

func describeFieldError(fe validator.FieldError) string {
	field := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func fieldLabel(name string) string {
	switch strings.ToLower(name) {
	case "taxid":
		return "Tax ID"
	default:
		return name
	}
}
