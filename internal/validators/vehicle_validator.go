package validators

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var currencyPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

func init() {
	validate = validator.New()
	// read the same tags gin binding uses, so callers outside the HTTP
	// layer get identical checks
	validate.SetTagName("binding")
	validate.RegisterValidation("currency_code", validateCurrencyCode)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct runs tag-based validation and flattens the result.
func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range fieldErrors {
			errors = append(errors, ValidationError{
				Field:   fieldError.Field(),
				Message: "failed on '" + fieldError.Tag() + "' validation",
			})
		}
	}
	return errors
}

// ValidateCurrency checks the shape of a currency code. Empty is allowed
// here; the service substitutes the configured default.
func ValidateCurrency(currency string) *ValidationError {
	trimmed := strings.TrimSpace(currency)
	if trimmed == "" {
		return nil
	}
	if !currencyPattern.MatchString(trimmed) {
		return &ValidationError{
			Field:   "currency",
			Message: "currency must be a three-letter code",
		}
	}
	return nil
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || currencyPattern.MatchString(value)
}
