package sanitizer

// Apply runs value through transforms in order. Nil transforms are skipped.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		if transform != nil {
			value = transform(value)
		}
	}
	return value
}

// Compose binds transforms into one reusable func.
func Compose[T any](transforms ...func(T) T) func(T) T {
	transforms = append([]func(T) T(nil), transforms...)
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// PlainText cleans free text typed into a form, such as a company name or a
// street address: markup is stripped, line breaks become spaces and runs of
// whitespace collapse to one.
var PlainText = Compose(StripHTML, SingleLine)
