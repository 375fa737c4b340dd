package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeMissingField        = "MISSING_FIELD"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeInvalidStatus       = "INVALID_STATUS"
	ErrCodeInvalidExpiryDate   = "INVALID_EXPIRY_DATE"
	ErrCodeProviderNotFound    = "PROVIDER_NOT_FOUND"
	ErrCodeReceiverNotFound    = "RECEIVER_NOT_FOUND"
	ErrCodeListingNotFound     = "LISTING_NOT_FOUND"
	ErrCodeReportNotFound      = "REPORT_NOT_FOUND"
	ErrCodeListingClaimed      = "LISTING_ALREADY_CLAIMED"
	ErrCodeProviderHasListings = "PROVIDER_HAS_LISTINGS"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingField        = NewDomainError(ErrCodeMissingField, "A required field is missing")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be zero or greater")
	ErrInvalidStatus       = NewDomainError(ErrCodeInvalidStatus, "Status must be Pending, Completed, or Cancelled")
	ErrInvalidExpiryDate   = NewDomainError(ErrCodeInvalidExpiryDate, "Expiry date must be a calendar date in YYYY-MM-DD form")
	ErrProviderNotFound    = NewDomainError(ErrCodeProviderNotFound, "Provider not found")
	ErrReceiverNotFound    = NewDomainError(ErrCodeReceiverNotFound, "Receiver not found")
	ErrListingNotFound     = NewDomainError(ErrCodeListingNotFound, "Food listing not found")
	ErrReportNotFound      = NewDomainError(ErrCodeReportNotFound, "No report with that identifier")
	ErrListingClaimed      = NewDomainError(ErrCodeListingClaimed, "Food listing already has a claim")
	ErrProviderHasListings = NewDomainError(ErrCodeProviderHasListings, "Provider still has food listings; remove them first")
)
