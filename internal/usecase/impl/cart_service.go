package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo     repository.CartRepository
	catalogRepo  repository.CatalogRepository
	policy       pricing.Policy
	enforceStock bool
	locks        *sessionLocks
	newLineID    func() string
	logger       *slog.Logger
}

// CartServiceParams holds dependencies for the cart service, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	CatalogRepo repository.CatalogRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCartService fails when the configured pricing overrides do not parse.
func NewCartService(params CartServiceParams) (usecase.CartUsecase, error) {
	policy, err := policyFromConfig(params.Config)
	if err != nil {
		return nil, err
	}

	enforceStock := false
	if params.Config != nil {
		enforceStock = params.Config.Cart.EnforceStock
	}

	return &cartService{
		cartRepo:     params.CartRepo,
		catalogRepo:  params.CatalogRepo,
		policy:       policy,
		enforceStock: enforceStock,
		locks:        &sessionLocks{},
		newLineID:    uuid.NewString,
		logger:       params.Logger,
	}, nil
}

func policyFromConfig(cfg *config.Config) (pricing.Policy, error) {
	if cfg == nil || cfg.Pricing == nil {
		return pricing.DefaultPolicy(), nil
	}

	policy, err := pricing.NewPolicy(cfg.Pricing.FreeShippingThreshold, cfg.Pricing.FlatShippingFee, cfg.Pricing.TaxRate)
	if err != nil {
		return pricing.Policy{}, errors.Wrap(err, "invalid pricing configuration")
	}

	return policy, nil
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) Get(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	return srv.view(srv.load(ctx, sessionID)), nil
}

func (srv *cartService) AddItem(ctx context.Context, sessionID string, input *usecase.AddItemInput) (*usecase.CartView, error) {
	if input.ProductID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product id is required")
	}
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails(fmt.Sprintf("got %d", input.Quantity))
	}

	return srv.dispatch(ctx, sessionID, func(prev entity.CartSnapshot) (cart.Intent, error) {
		product, ok := srv.catalogRepo.Lookup(input.ProductID)
		if !ok {
			return nil, domainerrors.ErrProductNotFound.WithDetails("no product with id " + input.ProductID)
		}

		requested := input.Quantity
		if line, found := prev.Line(input.ProductID); found {
			requested += line.Quantity
		}
		if err := srv.checkStock(product, requested); err != nil {
			return nil, err
		}

		return cart.AddItem{
			LineID:          srv.newLineID(),
			ProductID:       input.ProductID,
			Quantity:        input.Quantity,
			SelectedVariant: input.SelectedVariant,
		}, nil
	})
}

// UpdateQuantity removes the line when quantity is zero or less.
func (srv *cartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*usecase.CartView, error) {
	return srv.dispatch(ctx, sessionID, func(_ entity.CartSnapshot) (cart.Intent, error) {
		if quantity > 0 {
			if product, ok := srv.catalogRepo.Lookup(productID); ok {
				if err := srv.checkStock(product, quantity); err != nil {
					return nil, err
				}
			}
		}

		return cart.UpdateQuantity{ProductID: productID, Quantity: quantity}, nil
	})
}

func (srv *cartService) RemoveItem(ctx context.Context, sessionID, productID string) (*usecase.CartView, error) {
	return srv.dispatch(ctx, sessionID, constIntent(cart.RemoveItem{ProductID: productID}))
}

func (srv *cartService) Clear(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	return srv.dispatch(ctx, sessionID, constIntent(cart.Clear{}))
}

func (srv *cartService) CompleteCheckout(ctx context.Context, sessionID string, ordered entity.CartSnapshot) (*usecase.CartView, error) {
	return srv.dispatch(ctx, sessionID, constIntent(cart.CheckedOut{Items: ordered.Clone().Items}))
}

func (srv *cartService) Toggle(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	return srv.dispatch(ctx, sessionID, constIntent(cart.Toggle{}))
}

func (srv *cartService) Open(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	return srv.dispatch(ctx, sessionID, constIntent(cart.Open{}))
}

func (srv *cartService) Close(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	return srv.dispatch(ctx, sessionID, constIntent(cart.Close{}))
}

func constIntent(intent cart.Intent) func(entity.CartSnapshot) (cart.Intent, error) {
	return func(entity.CartSnapshot) (cart.Intent, error) {
		return intent, nil
	}
}

// dispatch runs load, reduce and save for one session while holding its lock.
// When save fails the stored snapshot is left as it was.
func (srv *cartService) dispatch(
	ctx context.Context,
	sessionID string,
	build func(prev entity.CartSnapshot) (cart.Intent, error),
) (*usecase.CartView, error) {
	unlock := srv.locks.lock(sessionID)
	defer unlock()

	prev := srv.load(ctx, sessionID)

	intent, err := build(prev)
	if err != nil {
		srv.log(ctx).Warn("Cart transition rejected", slog.String("sessionID", sessionID), slog.Any("error", err))

		return nil, err
	}

	next := cart.Reduce(prev, intent)
	if err := srv.cartRepo.Save(ctx, sessionID, next); err != nil {
		srv.log(ctx).Error("Failed to persist cart snapshot",
			slog.String("sessionID", sessionID),
			slog.String("intent", cart.Name(intent)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrCartUnavailable, err.Error())
	}

	srv.log(ctx).Debug("Cart updated",
		slog.String("sessionID", sessionID),
		slog.String("intent", cart.Name(intent)),
		slog.Int("itemCount", next.ItemCount()),
		slog.Bool("isOpen", next.IsOpen),
	)

	return srv.view(next), nil
}

// load never fails: unreadable state degrades to an empty cart.
func (srv *cartService) load(ctx context.Context, sessionID string) entity.CartSnapshot {
	snapshot, err := srv.cartRepo.Load(ctx, sessionID)
	if err == nil {
		return snapshot
	}

	if errors.Is(err, repository.ErrMalformedSnapshot) {
		srv.log(ctx).Warn("Discarding malformed cart snapshot", slog.String("sessionID", sessionID), slog.Any("error", err))
	} else {
		srv.log(ctx).Error("Failed to load cart snapshot", slog.String("sessionID", sessionID), slog.Any("error", err))
	}

	return entity.NewCartSnapshot()
}

func (srv *cartService) checkStock(product *entity.Product, quantity int) error {
	if !srv.enforceStock || quantity <= product.Stock {
		return nil
	}

	return domainerrors.ErrInsufficientStock.WithDetails(
		fmt.Sprintf("%s has %d in stock, requested %d", product.Name, product.Stock, quantity),
	)
}

func (srv *cartService) view(snapshot entity.CartSnapshot) *usecase.CartView {
	return &usecase.CartView{
		Snapshot: snapshot,
		Priced:   pricing.Project(snapshot, srv.catalogRepo, srv.policy),
	}
}
