// Package sanitizer provides small, stateless helpers for cleaning user input
// before it is validated, stored in a cart, or written to logs.
//
// The helpers fall into two groups:
//
//   - Strings: trimming, whitespace normalisation, control character removal.
//   - Format: e-mail and phone normalisation and masking of contact data so
//     that identifiers never reach the logs in clear text.
//
// Apply and Compose turn individual helpers into pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeWhitespace,
//	)
//
//	name := clean("  Jo \t Smith ") // "Jo Smith"
//
// The validator package uses these pipelines for field trimming, so a value is
// always sanitised before any rule sees it.
package sanitizer
