package checkout_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/modules/checkout"
	"github.com/dmitrymomot/storefront/pkg/cart"
)

func TestInvoiceView(t *testing.T) {
	t.Parallel()

	billing := &checkout.BillingInfo{
		FirstName:     "Alice <script>",
		CompanyName:   "Acme",
		StreetAddress: "1 Main St",
		Apartment:     "4B",
		City:          "Dhaka",
		Phone:         "5551234567",
		Email:         "alice@example.com",
	}
	sum := checkout.Summary{
		Lines:    []checkout.Line{{Name: "Keyboard", Price: cart.MustParseMoney("1234.5")}},
		Subtotal: cart.MustParseMoney("1234.5"),
		Shipping: checkout.DefaultShipping,
		Total:    cart.MustParseMoney("1239.5"),
	}
	inv, err := checkout.NewInvoice(sum, billing, checkout.PaymentCash, time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, checkout.InvoiceView(inv, "").Render(context.Background(), &sb))
	html := sb.String()

	assert.Contains(t, html, `id="invoice"`)
	assert.Contains(t, html, "Alice &lt;script&gt;")
	assert.Contains(t, html, "Company:</strong> Acme")
	assert.Contains(t, html, "Apartment:</strong> 4B")
	assert.Contains(t, html, "Cash on delivery")
	assert.Contains(t, html, "Jan 2, 2026, 3:04 PM")
	assert.Contains(t, html, "$1,234.50")
	assert.Contains(t, html, "$1,239.50")
	assert.NotContains(t, html, "<img")
}
