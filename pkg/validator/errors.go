package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors value via errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// Translation keys used by the built-in rules.
const (
	KeyPresent    = "validation.present"
	KeyEmail      = "validation.email"
	KeyEmailShape = "validation.email_shape"
)
