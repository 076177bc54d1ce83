// Package checkout turns a cart into an invoice.
//
// BuildSummary reads a cart through cart.Reader and derives
// total = subtotal + shipping, with one line per item in cart order. An
// Invoice adds validated billing details, the payment method and an issue
// date; it cannot be built without billing details. Service exposes the cart
// operations, blur validation of the billing form and invoice rendering over
// HTTP.
package checkout
