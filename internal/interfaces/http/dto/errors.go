package dto

import (
	"net/http"
	"strings"
)

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	ErrCodeValidation   = "ERR_VALIDATION"
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
)

// Resource error codes
const (
	ErrCodeNotFound            = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists       = "ERR_ALREADY_EXISTS"
	ErrCodeConflict            = "ERR_CONFLICT"
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
	ErrCodeDuplicateRequest    = "ERR_DUPLICATE_REQUEST"
)

// Business rule error codes
const (
	ErrCodeInvalidState        = "ERR_INVALID_STATE"
	ErrCodeInsufficientStock   = "ERR_INSUFFICIENT_STOCK"
	ErrCodeEmptyOrder          = "ERR_EMPTY_ORDER"
	ErrCodePaymentExceedsTotal = "ERR_PAYMENT_EXCEEDS_TOTAL"
)

// Settlement error codes
const (
	ErrCodeInvalidAmount      = "ERR_INVALID_AMOUNT"
	ErrCodeNoOutstandingDebt  = "ERR_NO_OUTSTANDING_DEBT"
	ErrCodeAmountExceedsDue   = "ERR_AMOUNT_EXCEEDS_DUE"
	ErrCodePersistenceFailure = "ERR_PERSISTENCE_FAILURE"
)

// Transport error codes
const (
	ErrCodeRateLimited     = "ERR_RATE_LIMITED"
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
	ErrCodeTimeout         = "ERR_TIMEOUT"
	ErrCodeForbidden       = "ERR_FORBIDDEN"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeDuplicateRequest:    http.StatusConflict,

	ErrCodeInvalidState:        http.StatusUnprocessableEntity,
	ErrCodeInsufficientStock:   http.StatusUnprocessableEntity,
	ErrCodeEmptyOrder:          http.StatusBadRequest,
	ErrCodePaymentExceedsTotal: http.StatusUnprocessableEntity,

	ErrCodeInvalidAmount:      http.StatusBadRequest,
	ErrCodeNoOutstandingDebt:  http.StatusNotFound,
	ErrCodeAmountExceedsDue:   http.StatusUnprocessableEntity,
	ErrCodePersistenceFailure: http.StatusServiceUnavailable,

	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeTimeout:         http.StatusGatewayTimeout,
	ErrCodeForbidden:       http.StatusForbidden,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Field-level ERR_INVALID_* codes are client errors; anything else unknown is 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "ERR_INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":             ErrCodeNotFound,
	"ALREADY_EXISTS":        ErrCodeAlreadyExists,
	"INVALID_INPUT":         ErrCodeInvalidInput,
	"INVALID_STATE":         ErrCodeInvalidState,
	"CONCURRENCY_CONFLICT":  ErrCodeConcurrencyConflict,
	"DUPLICATE_REQUEST":     ErrCodeDuplicateRequest,
	"INSUFFICIENT_STOCK":    ErrCodeInsufficientStock,
	"EMPTY_ORDER":           ErrCodeEmptyOrder,
	"PAYMENT_EXCEEDS_TOTAL": ErrCodePaymentExceedsTotal,
	"INVALID_AMOUNT":        ErrCodeInvalidAmount,
	"NO_OUTSTANDING_DEBT":   ErrCodeNoOutstandingDebt,
	"AMOUNT_EXCEEDS_DUE":    ErrCodeAmountExceedsDue,
	"PERSISTENCE_FAILURE":   ErrCodePersistenceFailure,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Codes already prefixed with ERR_ pass through; other INVALID_* codes get the prefix.
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	if strings.HasPrefix(code, "INVALID_") {
		return "ERR_" + code
	}
	return code
}
