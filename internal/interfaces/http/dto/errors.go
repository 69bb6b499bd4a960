package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	ErrCodeValidation         = "ERR_VALIDATION"
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	ErrCodeValidationFormat   = "ERR_VALIDATION_FORMAT"
	ErrCodeValidationRange    = "ERR_VALIDATION_RANGE"
	ErrCodeValidationLength   = "ERR_VALIDATION_LENGTH"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	ErrCodeConflict      = "ERR_CONFLICT"
)

// Input error codes
const (
	ErrCodeBadRequest           = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput         = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON          = "ERR_INVALID_JSON"
	ErrCodePayloadTooLarge      = "ERR_PAYLOAD_TOO_LARGE"
	ErrCodeUnsupportedMediaType = "ERR_UNSUPPORTED_MEDIA_TYPE"
)

// Chat relay error codes
const (
	ErrCodeConfiguration     = "ERR_CONFIGURATION"
	ErrCodeEmptyConversation = "ERR_EMPTY_CONVERSATION"
	ErrCodeProvider          = "ERR_PROVIDER"
)

// Rate limiting error codes
const (
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeValidationRange:    http.StatusBadRequest,
	ErrCodeValidationLength:   http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	ErrCodeBadRequest:           http.StatusBadRequest,
	ErrCodeInvalidInput:         http.StatusBadRequest,
	ErrCodeInvalidJSON:          http.StatusBadRequest,
	ErrCodePayloadTooLarge:      http.StatusRequestEntityTooLarge,
	ErrCodeUnsupportedMediaType: http.StatusUnsupportedMediaType,

	// The chat widget only distinguishes "bad request" from "server failed".
	ErrCodeConfiguration:     http.StatusInternalServerError,
	ErrCodeEmptyConversation: http.StatusBadRequest,
	ErrCodeProvider:          http.StatusInternalServerError,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":              ErrCodeNotFound,
	"ALREADY_EXISTS":         ErrCodeAlreadyExists,
	"INVALID_INPUT":          ErrCodeInvalidInput,
	"UNAUTHORIZED":           ErrCodeUnauthorized,
	"FORBIDDEN":              ErrCodeForbidden,
	"VALIDATION_ERROR":       ErrCodeValidation,
	"BAD_REQUEST":            ErrCodeBadRequest,
	"INTERNAL_ERROR":         ErrCodeInternal,
	"FILE_TOO_LARGE":         ErrCodePayloadTooLarge,
	"UNSUPPORTED_MEDIA_TYPE": ErrCodeUnsupportedMediaType,
	"CONFIGURATION_ERROR":    ErrCodeConfiguration,
	"EMPTY_CONVERSATION":     ErrCodeEmptyConversation,
	"PROVIDER_ERROR":         ErrCodeProvider,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Codes that are already in the API format, or unknown, are returned as-is.
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
