package keyvalue

import "go.uber.org/fx"

// Module provides the key-value backed repositories
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewCartRepository,
		NewNewsletterQueue,
		NewOrderRepository,
	),
)
