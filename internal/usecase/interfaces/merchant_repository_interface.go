package interfaces

import (
	"context"

	"merchant_gateway/internal/domain/entities"
)

// IMerchantRepository persists MerchantProfile records.
//
// GetByID returns a zero-value profile (empty ID) when the merchant does not exist.
type IMerchantRepository interface {
	Create(ctx context.Context, m entities.MerchantProfile) (entities.MerchantProfile, error)
	GetByID(ctx context.Context, id string) (entities.MerchantProfile, error)
	Put(ctx context.Context, m entities.MerchantProfile) (entities.MerchantProfile, error)
	Delete(ctx context.Context, id string) error
}
