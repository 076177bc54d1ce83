// Package auth serves the storefront's login and sign-up forms.
//
// Both forms are built by one builder from shared field fragments: an
// email-or-phone contact field, a password field with a strength rule and a
// 20 character limit, and, for sign-up only, a full name field. Submissions
// that pass validation are handed to a Submitter. Accounts is the Submitter
// the application uses: it keeps bcrypt password hashes in an AccountStore,
// keyed by the lowercased e-mail address or the digits of the phone number.
// MemoryAccountStore is the in-process AccountStore.
//
// Plain form posts get JSON back (422 with per-field messages on failure).
// Requests from the datastar client get SSE patches of the field error
// elements, identified as "<form>-<field>-error".
package auth
