package checkout

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const invoiceDateLayout = "Jan 2, 2006, 3:04 PM"

// InvoiceElementID is the DOM id of the rendered invoice.
const InvoiceElementID = "invoice"

// FieldErrorID is the DOM id of the element holding a billing field's error.
func FieldErrorID(field string) string {
	return BillingFormName + "-" + field + "-error"
}

func FieldError(field, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p id="%s" class="field-error" role="alert">%s</p>`,
			FieldErrorID(field), templ.EscapeString(message))
		return err
	})
}

type htmlWriter struct {
	sb strings.Builder
}

func (h *htmlWriter) raw(s string) { h.sb.WriteString(s) }

func (h *htmlWriter) text(s string) { h.sb.WriteString(templ.EscapeString(s)) }

func (h *htmlWriter) row(label, value string) {
	h.raw(`<p><strong>`)
	h.text(label)
	h.raw(`:</strong> `)
	h.text(value)
	h.raw(`</p>`)
}

func (h *htmlWriter) priceRow(class, label, value string) {
	h.raw(`<div class="` + class + `"><span>`)
	h.text(label)
	h.raw(`</span><span>`)
	h.text(value)
	h.raw(`</span></div>`)
}

// InvoiceView renders the invoice document. qrDataURI may be empty.
func InvoiceView(inv Invoice, qrDataURI string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var h htmlWriter

		h.raw(`<article id="` + InvoiceElementID + `" class="invoice">`)
		h.raw(`<h2 class="invoice-title">E-Commerce Invoice</h2>`)
		h.raw(`<p class="invoice-ref">`)
		h.text(inv.Reference())
		h.raw(`</p>`)

		h.raw(`<section class="invoice-billing"><h3>Billing Information</h3>`)
		h.row("Name", inv.Billing.FirstName)
		if inv.Billing.CompanyName != "" {
			h.row("Company", inv.Billing.CompanyName)
		}
		h.row("Address", inv.Billing.StreetAddress)
		if inv.Billing.Apartment != "" {
			h.row("Apartment", inv.Billing.Apartment)
		}
		h.row("City", inv.Billing.City)
		h.row("Phone", inv.Billing.Phone)
		h.row("Email", inv.Billing.Email)
		h.raw(`</section>`)

		h.raw(`<section class="invoice-payment"><h3>Payment Information</h3>`)
		h.row("Method", inv.Payment.Label())
		h.row("Date", inv.IssuedAt.Format(invoiceDateLayout))
		h.raw(`</section>`)

		h.raw(`<section class="invoice-summary"><h3>Summary</h3>`)
		h.priceRow("invoice-head", "Product", "Price")
		if inv.IsEmpty() {
			h.raw(`<div class="invoice-empty">No products in cart</div>`)
		}
		for _, line := range inv.Lines {
			h.priceRow("invoice-line", line.Name, line.Price.String())
		}
		h.priceRow("invoice-subtotal", "Subtotal:", inv.Subtotal.String())
		h.priceRow("invoice-shipping", "Shipping:", inv.Shipping.String())
		h.priceRow("invoice-total", "Total:", inv.Total.String())
		h.raw(`</section>`)

		if qrDataURI != "" {
			h.raw(`<img class="invoice-qr" alt="Invoice reference" src="`)
			h.text(qrDataURI)
			h.raw(`">`)
		}
		h.raw(`</article>`)

		_, err := io.WriteString(w, h.sb.String())
		return err
	})
}
