package checkout

import (
	"fmt"

	"github.com/dmitrymomot/storefront/pkg/sanitizer"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

const BillingFormName = "billing"

const (
	FieldFirstName     = "firstName"
	FieldCompanyName   = "companyName"
	FieldStreetAddress = "streetAddress"
	FieldApartment     = "apartment"
	FieldCity          = "city"
	FieldPhone         = "phone"
	FieldEmail         = "email"
	FieldPaymentMethod = "paymentMethod"
)

const (
	MsgPhoneInvalid   = "Enter a valid phone number"
	MsgEmailInvalid   = "Enter a valid email address"
	MsgPaymentInvalid = "Choose a payment method"
)

const billingMaxLength = 100

// PaymentMethod is how the customer pays for an order.
type PaymentMethod string

const (
	PaymentBank PaymentMethod = "bank"
	PaymentCash PaymentMethod = "cash"
)

// DefaultPaymentMethod is preselected on the checkout page.
const DefaultPaymentMethod = PaymentBank

// ParsePaymentMethod accepts "bank" and "cash". Empty input selects the
// default.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case "":
		return DefaultPaymentMethod, nil
	case PaymentBank, PaymentCash:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, s)
}

// Label is the human readable name shown on the invoice.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentBank:
		return "Bank"
	case PaymentCash:
		return "Cash on delivery"
	}
	return string(m)
}

// BillingInfo holds validated billing details. CompanyName and Apartment are
// optional.
type BillingInfo struct {
	FirstName     string `json:"firstName"`
	CompanyName   string `json:"companyName,omitempty"`
	StreetAddress string `json:"streetAddress"`
	Apartment     string `json:"apartment,omitempty"`
	City          string `json:"city"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

func textField(name, label string, required bool, opts ...validator.FieldOption) validator.FieldSpec {
	base := []validator.FieldOption{
		validator.WithLabel(label),
		validator.Trimmed(),
		validator.WithSanitizers(sanitizer.PlainText),
		validator.WithMaxLength(billingMaxLength, ""),
	}
	if required {
		base = append(base, validator.Required())
	}
	return validator.MustField(name, append(base, opts...)...)
}

func defaultPaymentMethod(s string) string {
	if s == "" {
		return string(DefaultPaymentMethod)
	}
	return s
}

var billingForm = validator.MustForm(BillingFormName,
	textField(FieldFirstName, "First name", true),
	textField(FieldCompanyName, "Company name", false),
	textField(FieldStreetAddress, "Street address", true),
	textField(FieldApartment, "Apartment", false),
	textField(FieldCity, "Town/City", true),
	textField(FieldPhone, "Phone number", true, validator.WithRules(validator.Phone(MsgPhoneInvalid))),
	textField(FieldEmail, "Email address", true, validator.WithRules(validator.Email(MsgEmailInvalid))),
	validator.MustField(FieldPaymentMethod,
		validator.WithLabel("Payment method"),
		validator.Trimmed(),
		validator.WithSanitizers(defaultPaymentMethod),
		validator.WithRules(validator.OneOf([]string{string(PaymentBank), string(PaymentCash)}, MsgPaymentInvalid)),
	),
)

// BillingForm validates the billing details and the payment method.
func BillingForm() *validator.FormSpec { return billingForm }

// BillingRequest is the raw checkout form.
type BillingRequest struct {
	FirstName     string `form:"firstName" json:"firstName"`
	CompanyName   string `form:"companyName" json:"companyName"`
	StreetAddress string `form:"streetAddress" json:"streetAddress"`
	Apartment     string `form:"apartment" json:"apartment"`
	City          string `form:"city" json:"city"`
	Phone         string `form:"phone" json:"phone"`
	Email         string `form:"email" json:"email"`
	PaymentMethod string `form:"paymentMethod" json:"paymentMethod"`
}

func (r BillingRequest) values() map[string]string {
	return map[string]string{
		FieldFirstName:     r.FirstName,
		FieldCompanyName:   r.CompanyName,
		FieldStreetAddress: r.StreetAddress,
		FieldApartment:     r.Apartment,
		FieldCity:          r.City,
		FieldPhone:         r.Phone,
		FieldEmail:         r.Email,
		FieldPaymentMethod: r.PaymentMethod,
	}
}

// ValidateBilling validates req and returns the sanitized billing details and
// payment method. The error is validator.ValidationErrors when a field fails.
func ValidateBilling(req BillingRequest) (BillingInfo, PaymentMethod, error) {
	res := billingForm.Validate(req.values())
	if err := res.Err(); err != nil {
		return BillingInfo{}, "", err
	}

	method, err := ParsePaymentMethod(res.Value(FieldPaymentMethod))
	if err != nil {
		return BillingInfo{}, "", err
	}

	return BillingInfo{
		FirstName:     res.Value(FieldFirstName),
		CompanyName:   res.Value(FieldCompanyName),
		StreetAddress: res.Value(FieldStreetAddress),
		Apartment:     res.Value(FieldApartment),
		City:          res.Value(FieldCity),
		Phone:         res.Value(FieldPhone),
		Email:         res.Value(FieldEmail),
	}, method, nil
}
