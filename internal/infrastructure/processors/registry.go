// Package processors selects a processor implementation by name and wraps
// it in a gateway.
package processors

import (
	"fmt"
	"sort"
	"strings"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/processors/bluedog"
	"merchant_gateway/internal/infrastructure/processors/bluedogv2"
	"merchant_gateway/internal/infrastructure/processors/epn"
	"merchant_gateway/internal/infrastructure/processors/mercadopago"
	"merchant_gateway/internal/infrastructure/processors/zeamster"
	"merchant_gateway/internal/usecase/gateway"
	"merchant_gateway/internal/usecase/interfaces"

	"golang.org/x/exp/slog"
)

type constructor func(cfg entities.ProcessorConfig, client interfaces.HTTPClient, logger *slog.Logger) (interfaces.PaymentGateway, error)

var constructors = map[string]constructor{
	bluedog.Name: func(cfg entities.ProcessorConfig, client interfaces.HTTPClient, logger *slog.Logger) (interfaces.PaymentGateway, error) {
		p, err := bluedog.New(cfg)
		if err != nil {
			return nil, err
		}
		return gateway.New[*bluedog.Response](p, client, logger), nil
	},
	bluedogv2.Name: func(cfg entities.ProcessorConfig, client interfaces.HTTPClient, logger *slog.Logger) (interfaces.PaymentGateway, error) {
		p, err := bluedogv2.New(cfg)
		if err != nil {
			return nil, err
		}
		return gateway.New[*bluedogv2.Response](p, client, logger), nil
	},
	epn.Name: func(cfg entities.ProcessorConfig, client interfaces.HTTPClient, logger *slog.Logger) (interfaces.PaymentGateway, error) {
		p, err := epn.New(cfg)
		if err != nil {
			return nil, err
		}
		return gateway.New[*epn.Response](p, client, logger), nil
	},
	zeamster.Name: func(cfg entities.ProcessorConfig, client interfaces.HTTPClient, logger *slog.Logger) (interfaces.PaymentGateway, error) {
		p, err := zeamster.New(cfg)
		if err != nil {
			return nil, err
		}
		return gateway.New[*zeamster.Response](p, client, logger), nil
	},
	mercadopago.Name: func(cfg entities.ProcessorConfig, client interfaces.HTTPClient, logger *slog.Logger) (interfaces.PaymentGateway, error) {
		p, err := mercadopago.New(cfg)
		if err != nil {
			return nil, err
		}
		return gateway.New[*mercadopago.Response](p, client, logger), nil
	},
}

// Names lists the registered processors in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Factory builds gateways that share one HTTP client and logger.
type Factory struct {
	client interfaces.HTTPClient
	logger *slog.Logger
}

var _ interfaces.GatewayFactory = (*Factory)(nil)

func NewFactory(client interfaces.HTTPClient, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{client: client, logger: logger}
}

func (f *Factory) NewGateway(cfg entities.ProcessorConfig) (interfaces.PaymentGateway, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Processor))
	build, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", cfg.Processor, entities.ErrUnknownProcessor)
	}
	cfg.Processor = name
	gw, err := build(cfg, f.client, f.logger)
	if err != nil {
		f.logger.Warn("[processors] gateway config rejected", slog.String("processor", name), "err", err)
		return nil, err
	}
	return gw, nil
}
