package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether value is a #RGB or #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidateThemeColors returns one message per field that is not a hex color.
// Fields are passed as name/value pairs in display order.
func ValidateThemeColors(prefix string, fields [][2]string) []string {
	var errs []string

	for _, f := range fields {
		if !IsHexColor(f[1]) {
			errs = append(errs, prefix+"."+f[0]+" must be a hex color like #RRGGBB")
		}
	}

	return errs
}
