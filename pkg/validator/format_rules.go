package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

// emailShapeRegex accepts local@domain.tld where no part contains '@' or whitespace.
// \v, Unicode separators and BOM are listed explicitly because RE2's \s is ASCII-only.
var emailShapeRegex = regexp.MustCompile(`^[^@\s\v\p{Z}\x{FEFF}]+@[^@\s\v\p{Z}\x{FEFF}]+\.[^@\s\v\p{Z}\x{FEFF}]+$`)

// EmailShape performs a syntactic sanity check: something before '@', a domain
// containing a dot, and a non-empty TLD, with no whitespace anywhere.
// It says nothing about deliverability.
func EmailShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailShapeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must look like local@domain.tld",
			TranslationKey: KeyEmailShape,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidEmail validates that a string is a valid email address using RFC 5322.
// Stricter than EmailShape; used for configuration values such as sender addresses.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}

			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: KeyEmail,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
