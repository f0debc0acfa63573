// Package gateway runs payment operations against any processor that
// implements interfaces.Processor.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/usecase/interfaces"

	"golang.org/x/exp/slog"
)

// Gateway sequences Build, Do, Parse and Normalize for one processor. It
// holds no per-transaction state and is safe for concurrent use.
type Gateway[T any] struct {
	processor interfaces.Processor[T]
	client    interfaces.HTTPClient
	logger    *slog.Logger
}

var _ interfaces.PaymentGateway = (*Gateway[any])(nil)

func New[T any](processor interfaces.Processor[T], client interfaces.HTTPClient, logger *slog.Logger) *Gateway[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway[T]{
		processor: processor,
		client:    client,
		logger:    logger.With(slog.String("processor", processor.Name())),
	}
}

func (g *Gateway[T]) Name() string { return g.processor.Name() }

func (g *Gateway[T]) Supports(op entities.Operation) bool { return g.processor.Supports(op) }

func (g *Gateway[T]) Purchase(ctx context.Context, amount int64, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error) {
	return g.execute(ctx, entities.ChargeRequest{
		Operation: entities.OperationSale,
		Amount:    amount,
		Card:      card,
		VaultID:   opts.VaultID,
		Options:   opts,
	})
}

func (g *Gateway[T]) Authorize(ctx context.Context, amount int64, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error) {
	return g.execute(ctx, entities.ChargeRequest{
		Operation: entities.OperationAuthorize,
		Amount:    amount,
		Card:      card,
		VaultID:   opts.VaultID,
		Options:   opts,
	})
}

func (g *Gateway[T]) Capture(ctx context.Context, amount int64, authorization string, opts entities.Options) (entities.GatewayResult, error) {
	return g.execute(ctx, entities.ChargeRequest{
		Operation:     entities.OperationCapture,
		Amount:        amount,
		Authorization: authorization,
		Options:       opts,
	})
}

func (g *Gateway[T]) Refund(ctx context.Context, amount int64, authorization string, opts entities.Options) (entities.GatewayResult, error) {
	return g.execute(ctx, entities.ChargeRequest{
		Operation:     entities.OperationRefund,
		Amount:        amount,
		Authorization: authorization,
		Options:       opts,
	})
}

func (g *Gateway[T]) Void(ctx context.Context, authorization string, opts entities.Options) (entities.GatewayResult, error) {
	return g.execute(ctx, entities.ChargeRequest{
		Operation:     entities.OperationVoid,
		Authorization: authorization,
		Options:       opts,
	})
}

func (g *Gateway[T]) Verify(ctx context.Context, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error) {
	return verify(ctx, g, g.logger, card, opts)
}

func (g *Gateway[T]) Store(ctx context.Context, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error) {
	return g.execute(ctx, entities.ChargeRequest{
		Operation: entities.OperationStore,
		Card:      card,
		VaultID:   opts.VaultID,
		Options:   opts,
	})
}

func (g *Gateway[T]) UpdateStored(ctx context.Context, vaultID string, card *entities.CreditCard, opts entities.Options) (entities.GatewayResult, error) {
	return g.execute(ctx, entities.ChargeRequest{
		Operation: entities.OperationUpdateStore,
		Card:      card,
		VaultID:   vaultID,
		Options:   opts,
	})
}

func (g *Gateway[T]) Unstore(ctx context.Context, vaultID string, opts entities.Options) (entities.GatewayResult, error) {
	return g.execute(ctx, entities.ChargeRequest{
		Operation: entities.OperationUnstore,
		VaultID:   vaultID,
		Options:   opts,
	})
}

func (g *Gateway[T]) execute(ctx context.Context, req entities.ChargeRequest) (entities.GatewayResult, error) {
	name := g.processor.Name()
	log := g.logger.With(slog.String("operation", string(req.Operation)))

	if !g.processor.Supports(req.Operation) {
		log.Warn("[gateway] unsupported operation")
		return entities.GatewayResult{}, fmt.Errorf("%s %s: %w", name, req.Operation, entities.ErrUnsupportedOperation)
	}
	if err := validate(req); err != nil {
		log.Warn("[gateway] invalid request", "err", err)
		return entities.GatewayResult{}, fmt.Errorf("%s %s: %w", name, req.Operation, err)
	}

	httpReq, err := g.processor.Build(req)
	if err != nil {
		log.Warn("[gateway] build failed", "err", err)
		return entities.GatewayResult{}, err
	}

	log.Info("[gateway] request start", slog.String("method", httpReq.Method), slog.String("url", httpReq.URL))
	resp, err := g.client.Do(ctx, httpReq)
	if err != nil {
		log.Error("[gateway] transport failed", "err", err)
		return entities.GatewayResult{}, &entities.TransportError{Processor: name, Err: err}
	}
	log.Debug("[gateway] transcript", slog.String("wire", g.processor.Scrub(transcript(httpReq, resp))))

	if !g.processor.AcceptsStatus(resp.StatusCode) {
		log.Error("[gateway] unexpected http status", slog.Int("status", resp.StatusCode))
		return entities.GatewayResult{}, &entities.TransportError{Processor: name, StatusCode: resp.StatusCode}
	}

	typed, raw, err := g.processor.Parse(resp.Body)
	if err != nil {
		if !is2xx(resp.StatusCode) {
			// An error page in place of an error envelope.
			log.Error("[gateway] unreadable error reply", slog.Int("status", resp.StatusCode), "err", err)
			return entities.GatewayResult{}, &entities.TransportError{Processor: name, StatusCode: resp.StatusCode, Err: err}
		}
		log.Error("[gateway] parse failed", "err", err)
		return entities.GatewayResult{}, &entities.ParseError{Processor: name, Format: g.processor.Format(), Err: err}
	}

	result := g.processor.Normalize(req.Operation, resp.StatusCode, typed)
	g.finalize(&result, req.Operation, resp.StatusCode, raw)

	log.Info("[gateway] request done",
		slog.Bool("success", result.Success),
		slog.String("authorization", result.Authorization),
		slog.String("error_code", string(result.ErrorCode)),
		slog.Int("status", resp.StatusCode),
	)
	return result, nil
}

// finalize stamps the fields every result carries regardless of processor.
func (g *Gateway[T]) finalize(result *entities.GatewayResult, op entities.Operation, statusCode int, raw entities.RawResponse) {
	result.Raw = raw
	result.Test = g.processor.Config().Test
	result.Processor = g.processor.Name()
	result.Operation = op
	if result.Success {
		result.ErrorCode = ""
		return
	}
	if result.Message == "" && result.ErrorCode == "" {
		result.Message = fmt.Sprintf("%s %s failed without a reason (http %d)", result.Processor, op, statusCode)
	}
}

func is2xx(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

// transcript renders one exchange for debug logging. Callers scrub it.
func transcript(req interfaces.HTTPRequest, resp *interfaces.HTTPResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", req.Method, req.URL)
	keys := make([]string, 0, len(req.Headers))
	for k := range req.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, req.Headers[k])
	}
	fmt.Fprintf(&b, "\n%s\n\n<- %d\n%s", req.Body, resp.StatusCode, resp.Body)
	return b.String()
}
