package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storefront/pkg/cart"
)

// DefaultShipping is the flat shipping fee added to every order.
const DefaultShipping = cart.Money(500)

// Line is one product line of a summary.
type Line struct {
	ItemID uuid.UUID  `json:"itemId"`
	Name   string     `json:"name"`
	Price  cart.Money `json:"price"`
}

// Summary is the priced content of a cart.
type Summary struct {
	Lines    []Line     `json:"lines"`
	Subtotal cart.Money `json:"subtotal"`
	Shipping cart.Money `json:"shipping"`
	Total    cart.Money `json:"total"`
}

// IsEmpty reports whether the cart has no products.
func (s Summary) IsEmpty() bool {
	return len(s.Lines) == 0
}

// BuildSummary lists the cart's items in cart order and computes
// total = subtotal + shipping, where subtotal is the store's TotalPrice.
func BuildSummary(ctx context.Context, r cart.Reader, cartID string, shipping cart.Money) (Summary, error) {
	items, err := r.Items(ctx, cartID)
	if err != nil {
		return Summary{}, errors.Join(ErrCartUnavailable, err)
	}
	subtotal, err := r.TotalPrice(ctx, cartID)
	if err != nil {
		return Summary{}, errors.Join(ErrCartUnavailable, err)
	}

	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, Line{ItemID: item.ID, Name: item.Name, Price: item.Price})
	}

	return Summary{
		Lines:    lines,
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}, nil
}

// Invoice is a summary issued to a billed customer.
type Invoice struct {
	Number   uuid.UUID     `json:"number"`
	IssuedAt time.Time     `json:"issuedAt"`
	Billing  BillingInfo   `json:"billing"`
	Payment  PaymentMethod `json:"paymentMethod"`
	Summary
}

// NewInvoice issues an invoice. Billing details are mandatory.
func NewInvoice(summary Summary, billing *BillingInfo, method PaymentMethod, issuedAt time.Time) (Invoice, error) {
	if billing == nil {
		return Invoice{}, ErrBillingRequired
	}
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return Invoice{}, err
	}
	if method == "" {
		method = DefaultPaymentMethod
	}

	return Invoice{
		Number:   uuid.New(),
		IssuedAt: issuedAt,
		Billing:  *billing,
		Payment:  method,
		Summary:  summary,
	}, nil
}

// Reference is the short form of the invoice number.
func (inv Invoice) Reference() string {
	return "INV-" + inv.Number.String()[:8]
}

// QRContent is encoded in the invoice QR code.
func (inv Invoice) QRContent() string {
	return fmt.Sprintf("%s|%s|%s", inv.Reference(), inv.Total.Decimal(), inv.IssuedAt.UTC().Format(time.RFC3339))
}
