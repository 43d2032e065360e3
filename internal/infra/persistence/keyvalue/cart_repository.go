// Package keyvalue implements repositories on top of repository.KeyValueStore.
package keyvalue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

const cartCollection = "cart"

// storedCart is the persisted layout. ItemCount is written for readers of the raw value and ignored on load.
type storedCart struct {
	Items     []entity.CartLineItem `json:"items"`
	IsOpen    bool                  `json:"isOpen"`
	ItemCount int                   `json:"itemCount"`
}

type cartRepository struct {
	store repository.KeyValueStore
	ttl   time.Duration
}

// CartRepositoryParams holds dependencies for CartRepository, injected by Fx
type CartRepositoryParams struct {
	fx.In

	Store  repository.KeyValueStore
	Config *config.Config
}

// NewCartRepository creates a cart repository keyed by session ID.
func NewCartRepository(params CartRepositoryParams) repository.CartRepository {
	return &cartRepository{
		store: params.Store,
		ttl:   params.Config.Cart.TTL,
	}
}

func (repo *cartRepository) Load(ctx context.Context, sessionID string) (entity.CartSnapshot, error) {
	raw, err := repo.store.Get(ctx, repo.key(sessionID))
	if errors.Is(err, repository.ErrKeyNotFound) {
		return entity.NewCartSnapshot(), nil
	}
	if err != nil {
		return entity.NewCartSnapshot(), errors.Wrap(err, "load cart snapshot")
	}

	var stored storedCart
	if err := json.Unmarshal(raw, &stored); err != nil {
		return entity.NewCartSnapshot(), errors.Wrap(repository.ErrMalformedSnapshot, err.Error())
	}

	return sanitize(stored), nil
}

func (repo *cartRepository) Save(ctx context.Context, sessionID string, snapshot entity.CartSnapshot) error {
	items := snapshot.Items
	if items == nil {
		items = []entity.CartLineItem{}
	}

	raw, err := json.Marshal(storedCart{
		Items:     items,
		IsOpen:    snapshot.IsOpen,
		ItemCount: snapshot.ItemCount(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(repo.store.Set(ctx, repo.key(sessionID), raw, repo.ttl), "save cart snapshot")
}

func (repo *cartRepository) key(sessionID string) string {
	return repo.store.GenerateKey(cartCollection, sessionID)
}

// sanitize keeps the structural invariants of a snapshot: positive quantities and one line per product.
// Lines are not checked against the catalog.
func sanitize(stored storedCart) entity.CartSnapshot {
	snapshot := entity.NewCartSnapshot()
	snapshot.IsOpen = stored.IsOpen

	seen := make(map[string]struct{}, len(stored.Items))
	for _, item := range stored.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			continue
		}
		if _, dup := seen[item.ProductID]; dup {
			continue
		}
		seen[item.ProductID] = struct{}{}
		snapshot.Items = append(snapshot.Items, item)
	}

	return snapshot
}
