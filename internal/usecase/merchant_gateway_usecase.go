package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

var (
	ErrInvalidMerchantID = errors.New("invalid merchant id")
	ErrInvalidProcessor  = errors.New("invalid processor")
)

// CreateMerchantInput is a new processor account. An empty ID is assigned.
type CreateMerchantInput struct {
	ID          string
	Processor   string
	Test        bool
	Credentials map[string]string
	BaseURL     string
}

// IMerchantGatewayUseCase runs payment operations on behalf of a stored
// merchant profile.
type IMerchantGatewayUseCase interface {
	CreateMerchant(ctx context.Context, in CreateMerchantInput) (entities.MerchantProfile, error)
	GetMerchant(ctx context.Context, merchantID string) (entities.MerchantProfile, error)
	DeleteMerchant(ctx context.Context, merchantID string) error

	Purchase(ctx context.Context, merchantID string, amount int64, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error)
	Authorize(ctx context.Context, merchantID string, amount int64, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error)
	Capture(ctx context.Context, merchantID string, amount int64, authorization string, opts entities.Options) (entities.GatewayResult, error)
	Refund(ctx context.Context, merchantID string, amount int64, authorization string, opts entities.Options) (entities.GatewayResult, error)
	Void(ctx context.Context, merchantID string, authorization string, opts entities.Options) (entities.GatewayResult, error)
	Verify(ctx context.Context, merchantID string, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error)
	Store(ctx context.Context, merchantID string, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error)
	UpdateStored(ctx context.Context, merchantID string, vaultID string, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error)
	Unstore(ctx context.Context, merchantID string, vaultID string, opts entities.Options) (entities.GatewayResult, error)
}

type MerchantGatewayUseCase struct {
	repo    interfaces.IMerchantRepository
	factory interfaces.GatewayFactory
	logger  *slog.Logger
	now     func() time.Time
}

var _ IMerchantGatewayUseCase = (*MerchantGatewayUseCase)(nil)

func NewMerchantGatewayUseCase(repo interfaces.IMerchantRepository, factory interfaces.GatewayFactory, logger *slog.Logger) *MerchantGatewayUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &MerchantGatewayUseCase{
		repo:    repo,
		factory: factory,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *MerchantGatewayUseCase) CreateMerchant(ctx context.Context, in CreateMerchantInput) (entities.MerchantProfile, error) {
	processor := strings.ToLower(strings.TrimSpace(in.Processor))
	if processor == "" {
		return entities.MerchantProfile{}, ErrInvalidProcessor
	}
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}

	now := u.now()
	m := entities.MerchantProfile{
		ID:          id,
		Processor:   processor,
		Test:        in.Test,
		Credentials: in.Credentials,
		BaseURL:     strings.TrimSpace(in.BaseURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Reject unknown processors and missing credentials before persisting.
	if _, err := u.factory.NewGateway(m.ProcessorConfig()); err != nil {
		u.logger.Warn("[merchant][usecase] profile rejected", slog.String("processor", processor), "err", err)
		return entities.MerchantProfile{}, err
	}

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		u.logger.Error("[merchant][usecase] create failed", slog.String("merchant_id", id), "err", err)
		return entities.MerchantProfile{}, err
	}
	u.logger.Info("[merchant][usecase] merchant created", slog.String("merchant_id", id), slog.String("processor", processor))
	return created, nil
}

func (u *MerchantGatewayUseCase) GetMerchant(ctx context.Context, merchantID string) (entities.MerchantProfile, error) {
	merchantID = strings.TrimSpace(merchantID)
	if merchantID == "" {
		return entities.MerchantProfile{}, ErrInvalidMerchantID
	}
	m, err := u.repo.GetByID(ctx, merchantID)
	if err != nil {
		return entities.MerchantProfile{}, err
	}
	if m.ID == "" {
		return entities.MerchantProfile{}, entities.ErrMerchantNotFound
	}
	return m, nil
}

func (u *MerchantGatewayUseCase) DeleteMerchant(ctx context.Context, merchantID string) error {
	m, err := u.GetMerchant(ctx, merchantID)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, m.ID); err != nil {
		return err
	}
	u.logger.Info("[merchant][usecase] merchant deleted", slog.String("merchant_id", m.ID))
	return nil
}

func (u *MerchantGatewayUseCase) gatewayFor(ctx context.Context, merchantID string) (interfaces.PaymentGateway, error) {
	m, err := u.GetMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return u.factory.NewGateway(m.ProcessorConfig())
}

// run resolves the merchant's gateway and applies one operation to it.
func (u *MerchantGatewayUseCase) run(
	ctx context.Context,
	merchantID string,
	op entities.Operation,
	call func(gw interfaces.PaymentGateway) (entities.GatewayResult, error),
) (entities.GatewayResult, error) {
	log := u.logger.With(slog.String("merchant_id", merchantID), slog.String("operation", string(op)))

	gw, err := u.gatewayFor(ctx, merchantID)
	if err != nil {
		log.Warn("[merchant][usecase] gateway unavailable", "err", err)
		return entities.GatewayResult{}, err
	}
	result, err := call(gw)
	if err != nil {
		log.Warn("[merchant][usecase] operation failed", "err", err)
		return entities.GatewayResult{}, err
	}
	log.Info("[merchant][usecase] operation done", slog.Bool("success", result.Success))
	return result, nil
}

func (u *MerchantGatewayUseCase) Purchase(ctx context.Context, merchantID string, amount int64, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error) {
	return u.run(ctx, merchantID, entities.OperationSale, func(gw interfaces.PaymentGateway) (entities.GatewayResult, error) {
		return gw.Purchase(ctx, amount, card, opts)
	})
}

func (u *MerchantGatewayUseCase) Authorize(ctx context.Context, merchantID string, amount int64, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error) {
	return u.run(ctx, merchantID, entities.OperationAuthorize, func(gw interfaces.PaymentGateway) (entities.GatewayResult, error) {
		return gw.Authorize(ctx, amount, card, opts)
	})
}

func (u *MerchantGatewayUseCase) Capture(ctx context.Context, merchantID string, amount int64, authorization string, opts entities.Options) (entities.GatewayResult, error) {
	return u.run(ctx, merchantID, entities.OperationCapture, func(gw interfaces.PaymentGateway) (entities.GatewayResult, error) {
		return gw.Capture(ctx, amount, authorization, opts)
	})
}

func (u *MerchantGatewayUseCase) Refund(ctx context.Context, merchantID string, amount int64, authorization string, opts entities.Options) (entities.GatewayResult, error) {
	return u.run(ctx, merchantID, entities.OperationRefund, func(gw interfaces.PaymentGateway) (entities.GatewayResult, error) {
		return gw.Refund(ctx, amount, authorization, opts)
	})
}

func (u *MerchantGatewayUseCase) Void(ctx context.Context, merchantID string, authorization string, opts entities.Options) (entities.GatewayResult, error) {
	return u.run(ctx, merchantID, entities.OperationVoid, func(gw interfaces.PaymentGateway) (entities.GatewayResult, error) {
		return gw.Void(ctx, authorization, opts)
	})
}

func (u *MerchantGatewayUseCase) Verify(ctx context.Context, merchantID string, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error) {
	return u.run(ctx, merchantID, entities.OperationAuthorize, func(gw interfaces.PaymentGateway) (entities.GatewayResult, error) {
		return gw.Verify(ctx, card, opts)
	})
}

func (u *MerchantGatewayUseCase) Store(ctx context.Context, merchantID string, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error) {
	return u.run(ctx, merchantID, entities.OperationStore, func(gw interfaces.PaymentGateway) (entities.GatewayResult, error) {
		return gw.Store(ctx, card, opts)
	})
}

func (u *MerchantGatewayUseCase) UpdateStored(ctx context.Context, merchantID string, vaultID string, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error) {
	return u.run(ctx, merchantID, entities.OperationUpdateStore, func(gw interfaces.PaymentGateway) (entities.GatewayResult, error) {
		return gw.UpdateStored(ctx, vaultID, card, opts)
	})
}

func (u *MerchantGatewayUseCase) Unstore(ctx context.Context, merchantID string, vaultID string, opts entities.Options) (entities.GatewayResult, error) {
	return u.run(ctx, merchantID, entities.OperationUnstore, func(gw interfaces.PaymentGateway) (entities.GatewayResult, error) {
		return gw.Unstore(ctx, vaultID, opts)
	})
}
