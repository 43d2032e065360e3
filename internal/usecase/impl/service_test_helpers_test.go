package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
	}
}

func newTestProduct(id string, price int64, stock int) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      "Product " + id,
		Price:     decimal.NewFromInt(price),
		Images:    []string{"https://example.com/" + id + ".jpg"},
		Category:  "electronics",
		Stock:     stock,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
