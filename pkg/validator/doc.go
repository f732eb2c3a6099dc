// Package validator provides small, composable validation rules.
//
// A Rule couples a boolean Check with translation-friendly error metadata.
// Apply evaluates every rule and aggregates failures into ValidationErrors;
// ApplyFirst stops at the first failure, which suits dependent checks such
// as "present, then well-formed":
//
//	err := validator.ApplyFirst(
//	    validator.PresentString("email", email),
//	    validator.EmailShape("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    first, _ := verrs.First()
//	    switch first.TranslationKey {
//	    case validator.KeyPresent:
//	        // ...
//	    }
//	}
//
// ValidationErrors implements error and matches ErrValidationFailed through
// errors.Is. Rules hold no global state and are safe for concurrent use.
package validator
