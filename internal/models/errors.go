package models

import (
	"errors"
	"fmt"
)

// Domain error codes
const (
	ErrCodeInvalidAmount             = "INVALID_AMOUNT"
	ErrCodeInvalidCurrency           = "INVALID_CURRENCY"
	ErrCodeCurrencyMismatch          = "CURRENCY_MISMATCH"
	ErrCodeInvalidVehicleData        = "INVALID_VEHICLE_DATA"
	ErrCodeUnknownVehicleType        = "UNKNOWN_VEHICLE_TYPE"
	ErrCodeMissingOrInvalidAttribute = "MISSING_OR_INVALID_ATTRIBUTE"
	ErrCodeVehicleAlreadyExists      = "VEHICLE_ALREADY_EXISTS"
	ErrCodeVehicleNotFound           = "VEHICLE_NOT_FOUND"
	ErrCodeAuctionAlreadyActive      = "AUCTION_ALREADY_ACTIVE"
	ErrCodeAuctionNotFound           = "AUCTION_NOT_FOUND"
	ErrCodeAuctionClosed             = "AUCTION_CLOSED"
	ErrCodeAuctionAlreadyClosed      = "AUCTION_ALREADY_CLOSED"
	ErrCodeBidTooLow                 = "BID_TOO_LOW"
	ErrCodeEmptyBidder               = "EMPTY_BIDDER"
	ErrCodeEmptyCriteria             = "EMPTY_CRITERIA"
	ErrCodeInvalidSearchCriteria     = "INVALID_SEARCH_CRITERIA"
	ErrCodeInvalidPageRequest        = "INVALID_PAGE_REQUEST"
)

// DomainError is the single error type surfaced by the core. The Code is a
// stable machine-readable identifier; Message is safe to show to callers.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is makes errors.Is match two domain errors by code, so callers can compare
// against a constructed sentinel without caring about message details.
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if errors.As(target, &de) {
		return e.Code == de.Code
	}
	return false
}

func NewDomainError(code, format string, args ...interface{}) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsDomainError unwraps err into a *DomainError if one is in the chain.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// ErrorCode returns the domain code carried by err, or empty string.
func ErrorCode(err error) string {
	if de, ok := AsDomainError(err); ok {
		return de.Code
	}
	return ""
}

func NewInvalidAmountError(message string) *DomainError {
	return NewDomainError(ErrCodeInvalidAmount, "%s", message)
}

func NewInvalidCurrencyError(message string) *DomainError {
	return NewDomainError(ErrCodeInvalidCurrency, "%s", message)
}

func NewCurrencyMismatchError(operation, left, right string) *DomainError {
	return NewDomainError(ErrCodeCurrencyMismatch, "Cannot %s different currencies: %s and %s", operation, left, right)
}

func NewInvalidVehicleDataError(message string) *DomainError {
	return NewDomainError(ErrCodeInvalidVehicleData, "%s", message)
}

func NewUnknownVehicleTypeError(vehicleType string) *DomainError {
	return NewDomainError(ErrCodeUnknownVehicleType, "Unknown vehicle type: %s", vehicleType)
}

func NewMissingOrInvalidAttributeError(message string) *DomainError {
	return NewDomainError(ErrCodeMissingOrInvalidAttribute, "%s", message)
}

func NewVehicleAlreadyExistsError(vehicleID string) *DomainError {
	return NewDomainError(ErrCodeVehicleAlreadyExists, "Vehicle with ID '%s' already exists", vehicleID)
}

func NewVehicleNotFoundError(vehicleID string) *DomainError {
	return NewDomainError(ErrCodeVehicleNotFound, "Vehicle with ID '%s' not found", vehicleID)
}

func NewAuctionAlreadyActiveError(vehicleID string) *DomainError {
	return NewDomainError(ErrCodeAuctionAlreadyActive, "Auction for vehicle '%s' is already active", vehicleID)
}

func NewAuctionNotFoundError(vehicleID string) *DomainError {
	return NewDomainError(ErrCodeAuctionNotFound, "No active auction found for vehicle '%s'", vehicleID)
}

func NewAuctionClosedError() *DomainError {
	return NewDomainError(ErrCodeAuctionClosed, "Cannot place bid on closed auction")
}

func NewAuctionAlreadyClosedError() *DomainError {
	return NewDomainError(ErrCodeAuctionAlreadyClosed, "Auction is already closed")
}

func NewBidTooLowError(amount, currentHighest string) *DomainError {
	return NewDomainError(ErrCodeBidTooLow, "Bid amount (%s) must be greater than current highest bid (%s)", amount, currentHighest)
}

func NewEmptyBidderError() *DomainError {
	return NewDomainError(ErrCodeEmptyBidder, "Bidder cannot be empty")
}

func NewEmptyCriteriaError() *DomainError {
	return NewDomainError(ErrCodeEmptyCriteria, "At least one criteria must be provided")
}

func NewInvalidSearchCriteriaError(message string) *DomainError {
	return NewDomainError(ErrCodeInvalidSearchCriteria, "%s", message)
}

func NewInvalidPageRequestError(message string) *DomainError {
	return NewDomainError(ErrCodeInvalidPageRequest, "%s", message)
}
