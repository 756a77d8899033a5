package utils

// Application constants
const (
	AppName    = "CarAuction"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "USD"

	// Pagination
	DefaultTake = 10
	MaxTake     = 100

	// Response statuses
	StatusSuccess = "success"
	StatusError   = "error"
)
