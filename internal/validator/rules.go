package validator

import (
	"regexp"
	"unicode/utf8"
)

var (
	// CountryCodeRgx matches a two-letter country code in either case.
	CountryCodeRgx = regexp.MustCompile(`^[A-Za-z]{2}$`)
	// SectionIDRgx matches detail section identifiers such as "summary" or "unesco".
	SectionIDRgx = regexp.MustCompile(`^[a-z]+$`)
)

// MaxRunes returns true if a string is less than or equal to a maximum number of n
func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// Matches returns true if a string value matches a specific regexp pattern.
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// In returns true if a value is in a list of values.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

// IsCountryCode returns true if value is a two-letter code.
func IsCountryCode(value string) bool {
	return CountryCodeRgx.MatchString(value)
}

// IsFilterValue returns true if value is "all", empty, or one of allowed.
func IsFilterValue(value string, allowed ...string) bool {
	return value == "" || value == "all" || In(value, allowed...)
}
