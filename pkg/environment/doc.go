// Package environment names the deployment environment the storefront runs in
// and carries it through request contexts.
//
// The environment only affects operational behaviour (log format, how much
// detail an error page shows). Validation rules never depend on it.
package environment
