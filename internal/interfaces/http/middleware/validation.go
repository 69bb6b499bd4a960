package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/dicky/portfolio/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator makes validation errors report JSON field names
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	}
	return name
}

// FormatValidationErrors turns a bind error into the error envelope. Anything
// other than validator errors means the body itself could not be decoded.
func FormatValidationErrors(err error, requestID string) dto.Response {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return dto.NewErrorResponseWithRequestID(dto.ErrCodeInvalidJSON, "Malformed request body", requestID)
	}

	details := make([]dto.ValidationDetail, len(fieldErrs))
	for i, fe := range fieldErrs {
		details[i] = dto.ValidationDetail{Field: fe.Field(), Message: getValidationMessage(fe), Code: fe.Tag()}
	}
	return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
}

// HandleValidationError aborts with 400 and the formatted errors
func HandleValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, FormatValidationErrors(err, GetRequestID(c)))
}

var fixedMessages = map[string]string{
	"required": "This field is required",
	"uuid":     "Invalid UUID format",
	"url":      "Invalid URL format",
	"http_url": "Invalid URL format",
}

var paramMessages = map[string]string{
	"oneof": "Must be one of: %s",
	"gte":   "Must be greater than or equal to %s",
	"lte":   "Must be less than or equal to %s",
}

func getValidationMessage(fe validator.FieldError) string {
	if msg, ok := fixedMessages[fe.Tag()]; ok {
		return msg
	}
	if format, ok := paramMessages[fe.Tag()]; ok {
		return fmt.Sprintf(format, fe.Param())
	}
	unit := "items"
	if fe.Kind() == reflect.String {
		unit = "characters"
	}
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("Must contain at least %s %s", fe.Param(), unit)
	case "max":
		return fmt.Sprintf("Must contain at most %s %s", fe.Param(), unit)
	}
	return "Invalid value"
}
