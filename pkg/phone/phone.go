package phone

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/spf13/cast"
)

var (
	// separatorRegex matches formatting noise people type into phone fields
	separatorRegex = regexp.MustCompile(`[\s\v\-()]`)

	// mobilePatterns accept Philippine mobile numbers after cleaning
	// Formats: +639123456789, 639123456789, 09123456789, 9123456789
	mobilePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(\+?63)?9\d{9}$`),
		regexp.MustCompile(`^09\d{9}$`),
		regexp.MustCompile(`^9\d{9}$`),
	}
)

// Clean strips whitespace, hyphens and parentheses.
func Clean(s string) string {
	return separatorRegex.ReplaceAllString(s, "")
}

// IsMobile reports whether s is a Philippine mobile number once cleaned.
func IsMobile(s string) bool {
	cleaned := Clean(s)
	for _, pattern := range mobilePatterns {
		if pattern.MatchString(cleaned) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether a raw field value counts as not provided.
// It looks at the value as submitted, before any cleaning, so "---" is not empty.
func IsEmpty(value interface{}) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		return s == "" || s == "0"
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsEmpty(rv.Elem().Interface())
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}

// Message is the rejection text for the given attribute.
func Message(attribute string) string {
	return fmt.Sprintf("The %s must be a valid Philippine mobile number (e.g., 09123456789, +639123456789).", attribute)
}

// Validate checks value as a Philippine mobile number and calls fail once on rejection.
// Empty values pass; required-ness is checked by a separate rule.
func Validate(attribute string, value interface{}, fail func(message string)) {
	if IsEmpty(value) {
		return
	}

	if !IsMobile(cast.ToString(value)) {
		fail(Message(attribute))
	}
}
