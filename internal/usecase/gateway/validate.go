package gateway

import (
	"fmt"

	"merchant_gateway/internal/domain/entities"
)

// validate rejects requests that cannot succeed, before any network call.
// Zero amounts are left to each processor's builder.
func validate(req entities.ChargeRequest) error {
	if req.Amount < 0 {
		return fmt.Errorf("amount %d: %w", req.Amount, entities.ErrInvalidAmount)
	}
	switch req.Operation {
	case entities.OperationSale, entities.OperationAuthorize:
		if req.Card == nil && req.VaultID == "" {
			return entities.ErrMissingCard
		}
	case entities.OperationCapture, entities.OperationRefund, entities.OperationVoid:
		if req.Authorization == "" {
			return entities.ErrMissingAuthorization
		}
	case entities.OperationStore:
		if req.Card == nil {
			return entities.ErrMissingCard
		}
	case entities.OperationUpdateStore:
		if req.VaultID == "" {
			return entities.ErrMissingVaultID
		}
		if req.Card == nil {
			return entities.ErrMissingCard
		}
	case entities.OperationUnstore:
		if req.VaultID == "" {
			return entities.ErrMissingVaultID
		}
	}
	return nil
}
