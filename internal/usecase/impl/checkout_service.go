package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cart      usecase.CartUsecase
	identity  usecase.UserUsecase
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	qrCode    service.QRCodeService
	latency   time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for the checkout service, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Cart      usecase.CartUsecase
	Identity  usecase.UserUsecase
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	var latency time.Duration
	if params.Config != nil {
		latency = params.Config.Checkout.SimulatedLatency
	}

	return &checkoutService{
		cart:      params.Cart,
		identity:  params.Identity,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		qrCode:    params.QRCode,
		latency:   latency,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Prefill degrades to an empty contact block whenever the user cannot be resolved.
func (srv *checkoutService) Prefill(ctx context.Context, userID *uuid.UUID) (*entity.ContactInfo, error) {
	if userID == nil {
		return &entity.ContactInfo{}, nil
	}

	user, err := srv.identity.Session(ctx, *userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrIdentityUnavailable) || errors.Is(err, domainerrors.ErrUserNotFound) {
			srv.log(ctx).Debug("No identity to prefill checkout", slog.Any("userID", *userID), slog.Any("error", err))

			return &entity.ContactInfo{}, nil
		}

		return nil, errors.Wrap(err, "failed to load user for checkout prefill")
	}

	contact := user.Contact()

	return &contact, nil
}

// PlaceOrder aborts without touching the cart on any failure before the confirmation is stored.
func (srv *checkoutService) PlaceOrder(ctx context.Context, sessionID string, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	view, err := srv.cart.Get(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}
	if view.Snapshot.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	items := orderItems(view.Priced)
	if len(items) == 0 {
		return nil, domainerrors.ErrCartEmpty.WithDetails("none of the cart items are available")
	}

	last4, ok := lastFourDigits(input.Payment.CardNumber)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("card number must contain at least 4 digits")
	}

	srv.log(ctx).Info("Processing payment", slog.String("sessionID", sessionID), slog.String("total", view.Priced.Total.StringFixed(2)))

	if err := srv.simulatePayment(ctx); err != nil {
		srv.log(ctx).Warn("Payment interrupted", slog.String("sessionID", sessionID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentDeclined, err.Error())
	}

	order := &entity.Order{
		ID:              uuid.New(),
		UserID:          input.UserID,
		Items:           items,
		Subtotal:        view.Priced.Subtotal,
		Shipping:        view.Priced.Shipping,
		Tax:             view.Priced.Tax,
		Total:           view.Priced.Total,
		Status:          entity.OrderStatusProcessing,
		Contact:         input.Contact,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   "Card ending in " + last4,
		CreatedAt:       srv.now().UTC(),
		SessionID:       sessionID,
	}

	if err := srv.orderRepo.Save(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to store order confirmation", slog.Any("orderID", order.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store order confirmation")
	}

	srv.publish(ctx, order, view.Priced.ItemCount)

	if _, err := srv.cart.CompleteCheckout(ctx, sessionID, view.Snapshot); err != nil {
		srv.log(ctx).Warn("Failed to clear cart after checkout", slog.String("sessionID", sessionID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Order placed", slog.Any("orderID", order.ID), slog.Int("items", len(order.Items)))

	return order, nil
}

func (srv *checkoutService) simulatePayment(ctx context.Context) error {
	if srv.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(srv.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}

// publish is best effort; the order is already confirmed.
func (srv *checkoutService) publish(ctx context.Context, order *entity.Order, itemCount int) {
	event := &service.OrderPlacedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:   order.ID.String(),
		Email:     order.Contact.Email,
		ItemCount: itemCount,
		Subtotal:  order.Subtotal.StringFixed(2),
		Shipping:  order.Shipping.StringFixed(2),
		Tax:       order.Tax.StringFixed(2),
		Total:     order.Total.StringFixed(2),
		PlacedAt:  order.CreatedAt,
	}
	if order.UserID != nil {
		event.UserID = order.UserID.String()
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order placed event", slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}

func (srv *checkoutService) GetConfirmation(ctx context.Context, orderID uuid.UUID, viewer usecase.ConfirmationViewer) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.OwnedBy(viewer.SessionID, viewer.UserID) {
		return order, nil
	}

	return order.Redacted(), nil
}

func (srv *checkoutService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order confirmation")
	}

	return order, nil
}

func (srv *checkoutService) ConfirmationQR(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	if _, err := srv.findOrder(ctx, orderID); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateOrderQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render confirmation QR code")
	}

	return png, nil
}

// orderItems freezes the resolvable lines; dangling product references are skipped.
func orderItems(priced pricing.PricedCart) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(priced.Lines))
	for _, line := range priced.Lines {
		if line.Missing() {
			continue
		}
		items = append(items, entity.OrderItem{
			ID:              line.Item.ID,
			ProductID:       line.Item.ProductID,
			Name:            line.Product.Name,
			Price:           line.UnitPrice,
			Quantity:        line.Item.Quantity,
			Image:           line.Product.PrimaryImage(),
			SelectedVariant: line.Item.SelectedVariant,
		})
	}

	return items
}

func lastFourDigits(cardNumber string) (string, bool) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}

		return -1
	}, cardNumber)

	if len(digits) < 4 {
		return "", false
	}

	return digits[len(digits)-4:], true
}
