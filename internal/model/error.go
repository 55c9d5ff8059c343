package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeShopNotFound       = "SHOP_NOT_FOUND"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidVertical    = "INVALID_VERTICAL"
	ErrCodeInvalidStockStatus = "INVALID_STOCK_STATUS"
	ErrCodeRemoteFilterFailed = "REMOTE_FILTER_FAILED"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
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
	ErrShopNotFound       = NewDomainError(ErrCodeShopNotFound, "Shop not found")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidVertical    = NewDomainError(ErrCodeInvalidVertical, "Shop vertical must be one of brewery, teaShop, beautyShop, herbShop")
	ErrInvalidStockStatus = NewDomainError(ErrCodeInvalidStockStatus, "Stock status must be one of in_stock, low_stock, out_of_stock")
	ErrRemoteFilterFailed = NewDomainError(ErrCodeRemoteFilterFailed, "Remote filtering unavailable, results computed locally")
)
