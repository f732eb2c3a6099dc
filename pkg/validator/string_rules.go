package validator

// PresentString validates that a string is not empty. Whitespace counts as content,
// leaving its rejection to format rules.
func PresentString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: KeyPresent,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
