package validation

import "strings"

const maxFontFamilyLen = 200

// Characters that would end the declaration or rule the font is written into.
const fontForbiddenChars = `;{}<>\`

func ValidateFontFamily(field string, value string) []string {
	value = strings.TrimSpace(value)
	var errs []string

	if value == "" {
		errs = append(errs, field+" cannot be empty")
		return errs
	}

	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, field+" must not contain newlines")
	}

	if strings.ContainsAny(value, fontForbiddenChars) {
		errs = append(errs, field+" must not contain any of "+fontForbiddenChars)
	}

	if len(value) > maxFontFamilyLen {
		errs = append(errs, field+" is too long")
	}

	return errs
}

// IsFontFamily reports whether value passes ValidateFontFamily.
func IsFontFamily(value string) bool {
	return len(ValidateFontFamily("font", value)) == 0
}
