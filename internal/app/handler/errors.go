package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const (
	codeBadRequest = "BAD_REQUEST"
	codeInternal   = "INTERNAL_ERROR"
)

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict, apperr.KindInvalidState:
		return http.StatusConflict
	case apperr.KindInvalidRange, apperr.KindInvalidReference:
		return http.StatusBadRequest
	case apperr.KindValidation:
		return http.StatusUnprocessableEntity
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// errorHandler централизованная обработка ошибок. Неожиданные ошибки
// логируются, клиенту уходит только общий текст
func (h *Handler) errorHandler(c *gin.Context, err error) {
	if e, ok := apperr.As(err); ok {
		c.JSON(statusFor(e.Kind), dto.ErrorResponse{
			Status:  "error",
			Message: e.Message,
			Code:    e.Code,
			Errors:  e.Fields,
		})
		return
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("request failed")
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Status:  "error",
		Message: "internal server error",
		Code:    codeInternal,
	})
}

// bindError: нарушения binding-тегов дают 422 с полями, битое тело 400
func (h *Handler) bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apperr.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apperr.FieldError{Field: fe.Field(), Message: validationMessage(fe)})
		}
		h.errorHandler(c, apperr.Validation(fields...))
		return
	}
	h.badRequest(c, "malformed request: "+err.Error())
}

func (h *Handler) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Status:  "error",
		Message: message,
		Code:    codeBadRequest,
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "tier_name":
		return "must be one of basic, standard, premium, enterprise"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
