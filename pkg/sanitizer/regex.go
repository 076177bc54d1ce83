package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	dotRegex        = regexp.MustCompile(`\.+`)
	nonDigitRegex   = regexp.MustCompile(`\D`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
