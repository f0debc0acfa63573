package interfaces

import (
	"context"

	"merchant_gateway/internal/domain/entities"
)

// PaymentGateway is the processor-neutral operation surface.
//
// Business declines are returned as results with Success=false. Errors are
// reserved for local validation, transport and parse failures.
type PaymentGateway interface {
	Name() string
	Supports(op entities.Operation) bool

	Purchase(ctx context.Context, amount int64, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error)
	Authorize(ctx context.Context, amount int64, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error)
	Capture(ctx context.Context, amount int64, authorization string, opts entities.Options) (entities.GatewayResult, error)
	Refund(ctx context.Context, amount int64, authorization string, opts entities.Options) (entities.GatewayResult, error)
	Void(ctx context.Context, authorization string, opts entities.Options) (entities.GatewayResult, error)
	Verify(ctx context.Context, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error)

	Store(ctx context.Context, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error)
	UpdateStored(ctx context.Context, vaultID string, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error)
	Unstore(ctx context.Context, vaultID string, opts entities.Options) (entities.GatewayResult, error)
}

// GatewayFactory builds a gateway for a processor config, failing on
// unknown processors or missing credentials.
type GatewayFactory interface {
	NewGateway(cfg entities.ProcessorConfig) (PaymentGateway, error)
}
