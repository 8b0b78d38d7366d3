package moderation

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorCategory represents the category of an error for handling decisions.
type ErrorCategory string

const (
	ErrorCategoryNetwork    ErrorCategory = "network"    // Network connectivity issues
	ErrorCategoryRateLimit  ErrorCategory = "rate_limit" // Rate limiting
	ErrorCategoryTimeout    ErrorCategory = "timeout"    // Request timeout
	ErrorCategoryAuth       ErrorCategory = "auth"       // Authentication/authorization
	ErrorCategoryConfig     ErrorCategory = "config"     // Configuration issues
	ErrorCategoryInput      ErrorCategory = "input"      // Malformed request input
	ErrorCategoryProvider   ErrorCategory = "provider"   // Provider-specific errors
	ErrorCategoryInternal   ErrorCategory = "internal"   // Internal errors
)

// Common errors
var (
	ErrProviderNotFound   = errors.New("moderation: provider not found")
	ErrStoreNotConfigured = errors.New("moderation: store not configured")
	ErrReviewNotFound     = errors.New("moderation: review not found")
	ErrTimeout            = errors.New("moderation: operation timeout")
	ErrRateLimited        = errors.New("moderation: rate limited by provider")
	ErrContentTooLarge    = errors.New("moderation: content exceeds size limit")
	ErrDuplicateSubmit    = errors.New("moderation: duplicate submission")

	// Network errors
	ErrNetworkUnreachable = errors.New("moderation: network unreachable")
	ErrConnectionRefused  = errors.New("moderation: connection refused")

	// Config errors
	ErrMissingConfig    = errors.New("moderation: missing required configuration")
	ErrInvalidConfig    = errors.New("moderation: invalid configuration")
	ErrProviderDisabled = errors.New("moderation: provider is disabled")
)

// InputError represents a malformed or missing request field. The decision
// engine never lets one escape its public boundary: it is caught and
// converted into a safe default Result carrying FlagInvalidInput.
type InputError struct {
	Field   string // Field that failed validation
	Message string // What was wrong with it
}

func (e *InputError) Error() string {
	return fmt.Sprintf("moderation: invalid input on %s: %s", e.Field, e.Message)
}

// NewInputError creates a new input error.
func NewInputError(field, message string) *InputError {
	return &InputError{
		Field:   field,
		Message: message,
	}
}

// ProviderError represents an error from a cloud screening provider.
type ProviderError struct {
	Provider   string        // Provider name (aliyun, tencent)
	Code       string        // Error code from provider
	Message    string        // Error message
	StatusCode int           // HTTP status code if applicable
	Category   ErrorCategory // Error category for handling
	Retryable  bool          // Whether this error is retryable
	Err        error         // Underlying error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("moderation: provider %s error [%d/%s]: %s", e.Provider, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("moderation: provider %s error [%s]: %s", e.Provider, e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a new provider error.
func NewProviderError(provider, code, message string) *ProviderError {
	pe := &ProviderError{
		Provider: provider,
		Code:     code,
		Message:  message,
		Category: ErrorCategoryProvider,
	}
	pe.Retryable = pe.isRetryable()
	return pe
}

// WithStatusCode sets the HTTP status code.
func (e *ProviderError) WithStatusCode(code int) *ProviderError {
	e.StatusCode = code
	e.Category = categorizeByStatusCode(code)
	e.Retryable = e.isRetryable()
	return e
}

// WithCause sets the underlying error.
func (e *ProviderError) WithCause(err error) *ProviderError {
	e.Err = err
	return e
}

func (e *ProviderError) isRetryable() bool {
	switch e.Category {
	case ErrorCategoryNetwork, ErrorCategoryRateLimit, ErrorCategoryTimeout:
		return true
	}
	switch e.StatusCode {
	case 429, 500, 502, 503, 504:
		return true
	}
	return false
}

func categorizeByStatusCode(code int) ErrorCategory {
	switch {
	case code == 401 || code == 403:
		return ErrorCategoryAuth
	case code == 429:
		return ErrorCategoryRateLimit
	case code == 408 || code == 504:
		return ErrorCategoryTimeout
	case code >= 500:
		return ErrorCategoryInternal
	default:
		return ErrorCategoryProvider
	}
}

// StoreError represents a database/store error.
type StoreError struct {
	Operation string // Operation that failed (create, update, query)
	Table     string // Table name
	Err       error  // Underlying error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("moderation: store error during %s on %s: %v", e.Operation, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new store error.
func NewStoreError(operation, table string, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		Table:     table,
		Err:       err,
	}
}

// IsInputError checks if an error is an input error.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// IsProviderError checks if an error is a provider error.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// IsStoreError checks if an error is a store error.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrTimeout) || errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrNetworkUnreachable) || errors.Is(err, ErrConnectionRefused) {
		return true
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}

	return IsNetworkError(err)
}

// IsNetworkError checks if an error is a network-related error.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrNetworkUnreachable) || errors.Is(err, ErrConnectionRefused) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	networkPatterns := []string{
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"connection timed out",
		"dial tcp",
	}
	for _, pattern := range networkPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}

	return false
}

// GetErrorCategory returns the category of an error.
func GetErrorCategory(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category
	}

	if IsNetworkError(err) {
		return ErrorCategoryNetwork
	}
	if errors.Is(err, ErrTimeout) {
		return ErrorCategoryTimeout
	}
	if errors.Is(err, ErrRateLimited) {
		return ErrorCategoryRateLimit
	}
	if errors.Is(err, ErrMissingConfig) || errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrProviderDisabled) {
		return ErrorCategoryConfig
	}

	var ie *InputError
	if errors.As(err, &ie) {
		return ErrorCategoryInput
	}

	return ErrorCategoryInternal
}
