package gateway

import (
	"context"

	"merchant_gateway/internal/domain/entities"

	"golang.org/x/exp/slog"
)

// VerifyAmount is the nominal authorization, in minor units, used to check
// a card.
const VerifyAmount int64 = 100

type authorizeVoider interface {
	Authorize(ctx context.Context, amount int64, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error)
	Void(ctx context.Context, authorization string, opts entities.Options) (entities.GatewayResult, error)
}

// verify authorizes VerifyAmount and voids it when the authorization went
// through. Only the authorization outcome is reported; the void is cleanup.
func verify(ctx context.Context, gw authorizeVoider, logger *slog.Logger, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error) {
	result, err := gw.Authorize(ctx, VerifyAmount, card, opts)
	if err != nil || !result.Success || result.Authorization == "" {
		return result, err
	}

	voided, voidErr := gw.Void(ctx, result.Authorization, opts)
	switch {
	case voidErr != nil:
		logger.Warn("[gateway] verify void failed", slog.String("authorization", result.Authorization), "err", voidErr)
	case !voided.Success:
		logger.Warn("[gateway] verify void declined",
			slog.String("authorization", result.Authorization),
			slog.String("message", voided.Message),
		)
	}
	return result, nil
}
