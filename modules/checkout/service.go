package checkout

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/storefront/handler"
	"github.com/dmitrymomot/storefront/pkg/binder"
	"github.com/dmitrymomot/storefront/pkg/cart"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/qrcode"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

const (
	MsgItemNameRequired = "Product name is required"
	MsgPriceInvalid     = "Enter a valid price"
)

var itemForm = validator.MustForm("item",
	validator.MustField("name",
		validator.WithLabel("Product name"),
		validator.WithRequiredMessage(MsgItemNameRequired),
		validator.Trimmed(),
		validator.WithMaxLength(billingMaxLength, ""),
	),
	validator.MustField("price",
		validator.WithLabel("Price"),
		validator.Required(),
		validator.Trimmed(),
		validator.WithRules(validator.FieldRule{
			Name:    "money",
			Check:   validPrice,
			Message: MsgPriceInvalid,
		}),
	),
)

func validPrice(s string) bool {
	_, err := cart.ParseMoney(s)
	return err == nil
}

// Service serves cart operations and invoices for one cart store.
type Service struct {
	store        cart.Store
	shipping     cart.Money
	now          func() time.Time
	qrSize       int
	qr           *qrcode.Encoder
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

type Option func(*Service)

// WithShipping overrides DefaultShipping.
func WithShipping(fee cart.Money) Option {
	return func(s *Service) {
		if fee >= 0 {
			s.shipping = fee
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithQRSize sets the invoice QR code size in pixels. Zero disables it.
func WithQRSize(px int) Option {
	return func(s *Service) { s.qrSize = px }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func WithErrorHandler(eh handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) { s.errorHandler = eh }
}

func NewService(store cart.Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		shipping: DefaultShipping,
		now:      time.Now,
		qrSize:   128,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("checkout"))
	if s.qrSize > 0 {
		s.qr = qrcode.New(s.qrSize, qrcode.WithRecovery(qrcode.Medium))
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{})
	}
	return s
}

// Handle returns the module router:
//
//	GET    /carts/{cartID}                          cart summary
//	DELETE /carts/{cartID}                          clear the cart
//	POST   /carts/{cartID}/items                    add an item
//	DELETE /carts/{cartID}/items/{itemID}           remove an item
//	POST   /carts/{cartID}/billing/validate/{field} validate one billing field
//	POST   /carts/{cartID}/invoice                  issue an invoice
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Route("/carts/{cartID}", func(r chi.Router) {
		r.Get("/", route(s, s.summary))
		r.Delete("/", route(s, s.clear))
		r.Post("/items", route(s, s.addItem, binder.Signals(), binder.Form(), binder.JSON()))
		r.Delete("/items/{itemID}", route(s, s.removeItem))
		r.Post("/billing/validate/{field}", route(s, s.validateBillingField, binder.Signals(), binder.Form(), binder.JSON()))
		r.Post("/invoice", route(s, s.invoice, binder.Signals(), binder.Form(), binder.JSON()))
	})
	return r
}

func route[R any](s *Service, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](s.errorHandler),
	)
}

type noRequest struct{}

type AddItemRequest struct {
	Name  string `form:"name" json:"name"`
	Price string `form:"price" json:"price"`
}

func cartID(ctx handler.Context) string {
	return chi.URLParam(ctx.Request(), "cartID")
}

// cartError maps cart store failures to HTTP errors.
func cartError(err error) error {
	switch {
	case errors.Is(err, cart.ErrItemNotFound):
		return errors.Join(handler.ErrNotFound, err)
	case errors.Is(err, cart.ErrInvalidCartID), errors.Is(err, cart.ErrInvalidItem):
		return errors.Join(handler.ErrBadRequest, err)
	case errors.Is(err, cart.ErrStoreFailure):
		return errors.Join(handler.ErrServiceUnavailable, err)
	}
	return err
}

func (s *Service) summary(ctx handler.Context, _ noRequest) handler.Response {
	sum, err := BuildSummary(ctx, s.store, cartID(ctx), s.shipping)
	if err != nil {
		return handler.Error(cartError(err))
	}
	return handler.JSON(sum)
}

func (s *Service) clear(ctx handler.Context, _ noRequest) handler.Response {
	if err := s.store.Clear(ctx, cartID(ctx)); err != nil {
		return handler.Error(cartError(err))
	}
	return handler.Empty()
}

func (s *Service) addItem(ctx handler.Context, req AddItemRequest) handler.Response {
	res := itemForm.Validate(map[string]string{"name": req.Name, "price": req.Price})
	if err := res.Err(); err != nil {
		return handler.Error(err)
	}

	item := cart.NewItem(res.Value("name"), cart.MustParseMoney(res.Value("price")))
	if err := s.store.Add(ctx, cartID(ctx), item); err != nil {
		return handler.Error(cartError(err))
	}

	s.log.DebugContext(ctx, "item added", logger.CartID(cartID(ctx)), slog.String("item_id", item.ID.String()))
	return handler.JSON(item, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) removeItem(ctx handler.Context, _ noRequest) handler.Response {
	itemID, err := uuid.Parse(chi.URLParam(ctx.Request(), "itemID"))
	if err != nil {
		return handler.Error(errors.Join(handler.ErrBadRequest, err))
	}
	if err := s.store.Remove(ctx, cartID(ctx), itemID); err != nil {
		return handler.Error(cartError(err))
	}
	return handler.Empty()
}

func (s *Service) validateBillingField(ctx handler.Context, req BillingRequest) handler.Response {
	field := chi.URLParam(ctx.Request(), "field")
	res, err := BillingForm().ValidateField(field, req.values()[field])
	if err != nil {
		return handler.Error(errors.Join(handler.ErrNotFound, err))
	}

	msg := res.Message(field)
	if handler.IsDataStar(ctx.Request()) {
		return handler.Templ(FieldError(field, msg), handler.WithTarget("#"+FieldErrorID(field)))
	}
	return handler.JSON(map[string]any{"field": field, "valid": res.Valid, "message": msg})
}

func (s *Service) invoice(ctx handler.Context, req BillingRequest) handler.Response {
	billing, method, err := ValidateBilling(req)
	if err != nil {
		if errs := validator.ExtractValidationErrors(err); errs != nil && handler.IsDataStar(ctx.Request()) {
			return billingErrors(errs)
		}
		if errors.Is(err, ErrInvalidPaymentMethod) {
			err = errors.Join(handler.ErrBadRequest, err)
		}
		return handler.Error(err)
	}

	id := cartID(ctx)
	sum, err := BuildSummary(ctx, s.store, id, s.shipping)
	if err != nil {
		return handler.Error(cartError(err))
	}

	inv, err := NewInvoice(sum, &billing, method, s.now())
	if err != nil {
		return handler.Error(err)
	}

	var qr string
	if s.qr != nil {
		if qr, err = s.qr.DataURI(inv.QRContent()); err != nil {
			s.log.WarnContext(ctx, "invoice qr code failed", logger.Error(err))
			qr = ""
		}
	}

	s.log.InfoContext(ctx, "invoice issued",
		logger.CartID(id),
		slog.String("invoice", inv.Reference()),
		slog.String("total", inv.Total.Decimal()),
		logger.Contact(billing.Email),
	)

	if strings.Contains(ctx.Request().Header.Get("Accept"), "application/json") {
		return handler.JSON(inv)
	}
	return handler.Templ(InvoiceView(inv, qr), handler.WithTarget("#"+InvoiceElementID))
}

// billingErrors patches every billing field's error element, clearing the
// ones that passed.
func billingErrors(errs validator.ValidationErrors) handler.Response {
	fields := BillingForm().Fields()
	patches := make([]handler.TemplPatch, 0, len(fields))
	for _, f := range fields {
		patches = append(patches, handler.Patch(FieldError(f, errs.Get(f)), handler.WithTarget("#"+FieldErrorID(f))))
	}
	return handler.TemplMulti(patches...)
}
