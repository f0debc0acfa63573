package handlers

import (
	"errors"
	"net/http"

	request "merchant_gateway/internal/adapter/http/dto/request"
	response "merchant_gateway/internal/adapter/http/dto/response"
	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/domain/expiry"
	"merchant_gateway/internal/usecase"
	"merchant_gateway/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

var errInvalidChargePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// GatewayHandler exposes the payment operations of a merchant. Declines are
// 200 responses with success=false; only failures to get a processor answer
// are HTTP errors.
type GatewayHandler struct {
	usecase usecase.IMerchantGatewayUseCase
	logger  *slog.Logger
}

func NewGatewayHandler(uc usecase.IMerchantGatewayUseCase, logger *slog.Logger) *GatewayHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GatewayHandler{usecase: uc, logger: logger}
}

// Purchase godoc
// @Summary      Authorize and capture in one step
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        merchant_id  path  string                 true  "Merchant ID"
// @Param        body         body  request.ChargeRequest  true  "Charge"
// @Success      200  {object}  response.GatewayResultResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /merchants/{merchant_id}/purchase [post]
func (h *GatewayHandler) Purchase(c *gin.Context) {
	merchantID := c.Param("merchant_id")
	amount, card, opts, ok := h.bindCharge(c)
	if !ok {
		return
	}
	result, err := h.usecase.Purchase(c.Request.Context(), merchantID, amount, card, opts)
	h.respond(c, entities.OperationSale, result, err)
}

// Authorize godoc
// @Summary      Reserve funds without capturing them
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        merchant_id  path  string                 true  "Merchant ID"
// @Param        body         body  request.ChargeRequest  true  "Charge"
// @Success      200  {object}  response.GatewayResultResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /merchants/{merchant_id}/authorize [post]
func (h *GatewayHandler) Authorize(c *gin.Context) {
	merchantID := c.Param("merchant_id")
	amount, card, opts, ok := h.bindCharge(c)
	if !ok {
		return
	}
	result, err := h.usecase.Authorize(c.Request.Context(), merchantID, amount, card, opts)
	h.respond(c, entities.OperationAuthorize, result, err)
}

// Verify godoc
// @Summary      Check a card with a voided nominal authorization
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        merchant_id  path  string                   true  "Merchant ID"
// @Param        body         body  request.CardOnlyRequest  true  "Card"
// @Success      200  {object}  response.GatewayResultResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /merchants/{merchant_id}/verify [post]
func (h *GatewayHandler) Verify(c *gin.Context) {
	merchantID := c.Param("merchant_id")
	card, opts, ok := h.bindCard(c)
	if !ok {
		return
	}
	result, err := h.usecase.Verify(c.Request.Context(), merchantID, card, opts)
	h.respond(c, entities.OperationAuthorize, result, err)
}

// Store godoc
// @Summary      Save a card in the processor vault
// @Tags         vault
// @Accept       json
// @Produce      json
// @Param        merchant_id  path  string                   true  "Merchant ID"
// @Param        body         body  request.CardOnlyRequest  true  "Card"
// @Success      200  {object}  response.GatewayResultResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /merchants/{merchant_id}/store [post]
func (h *GatewayHandler) Store(c *gin.Context) {
	merchantID := c.Param("merchant_id")
	card, opts, ok := h.bindCard(c)
	if !ok {
		return
	}
	result, err := h.usecase.Store(c.Request.Context(), merchantID, card, opts)
	h.respond(c, entities.OperationStore, result, err)
}

// UpdateStored godoc
// @Summary      Replace the card behind a vault id
// @Tags         vault
// @Accept       json
// @Produce      json
// @Param        merchant_id  path  string                   true  "Merchant ID"
// @Param        vault_id     path  string                   true  "Vault ID"
// @Param        body         body  request.CardOnlyRequest  true  "Card"
// @Success      200  {object}  response.GatewayResultResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /merchants/{merchant_id}/vault/{vault_id} [put]
func (h *GatewayHandler) UpdateStored(c *gin.Context) {
	merchantID, vaultID := c.Param("merchant_id"), c.Param("vault_id")
	card, opts, ok := h.bindCard(c)
	if !ok {
		return
	}
	result, err := h.usecase.UpdateStored(c.Request.Context(), merchantID, vaultID, card, opts)
	h.respond(c, entities.OperationUpdateStore, result, err)
}

// Unstore godoc
// @Summary      Delete a vault entry
// @Tags         vault
// @Produce      json
// @Param        merchant_id  path  string  true  "Merchant ID"
// @Param        vault_id     path  string  true  "Vault ID"
// @Success      200  {object}  response.GatewayResultResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /merchants/{merchant_id}/vault/{vault_id} [delete]
func (h *GatewayHandler) Unstore(c *gin.Context) {
	merchantID, vaultID := c.Param("merchant_id"), c.Param("vault_id")
	result, err := h.usecase.Unstore(c.Request.Context(), merchantID, vaultID, entities.Options{})
	h.respond(c, entities.OperationUnstore, result, err)
}

// Capture godoc
// @Summary      Capture an authorization
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        merchant_id    path  string                   true  "Merchant ID"
// @Param        authorization  path  string                   true  "Authorization reference"
// @Param        body           body  request.FollowUpRequest  true  "Amount"
// @Success      200  {object}  response.GatewayResultResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /merchants/{merchant_id}/transactions/{authorization}/capture [post]
func (h *GatewayHandler) Capture(c *gin.Context) {
	merchantID, authorization := c.Param("merchant_id"), c.Param("authorization")
	amount, opts, ok := h.bindFollowUp(c)
	if !ok {
		return
	}
	result, err := h.usecase.Capture(c.Request.Context(), merchantID, amount, authorization, opts)
	h.respond(c, entities.OperationCapture, result, err)
}

// Refund godoc
// @Summary      Refund a captured transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        merchant_id    path  string                   true  "Merchant ID"
// @Param        authorization  path  string                   true  "Authorization reference"
// @Param        body           body  request.FollowUpRequest  true  "Amount"
// @Success      200  {object}  response.GatewayResultResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /merchants/{merchant_id}/transactions/{authorization}/refund [post]
func (h *GatewayHandler) Refund(c *gin.Context) {
	merchantID, authorization := c.Param("merchant_id"), c.Param("authorization")
	amount, opts, ok := h.bindFollowUp(c)
	if !ok {
		return
	}
	result, err := h.usecase.Refund(c.Request.Context(), merchantID, amount, authorization, opts)
	h.respond(c, entities.OperationRefund, result, err)
}

// Void godoc
// @Summary      Cancel an uncaptured authorization
// @Tags         transactions
// @Produce      json
// @Param        merchant_id    path  string  true  "Merchant ID"
// @Param        authorization  path  string  true  "Authorization reference"
// @Success      200  {object}  response.GatewayResultResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /merchants/{merchant_id}/transactions/{authorization}/void [post]
func (h *GatewayHandler) Void(c *gin.Context) {
	merchantID, authorization := c.Param("merchant_id"), c.Param("authorization")
	var payload request.FollowUpRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	result, err := h.usecase.Void(c.Request.Context(), merchantID, authorization, payload.Options)
	h.respond(c, entities.OperationVoid, result, err)
}

func (h *GatewayHandler) bindCharge(c *gin.Context) (int64, *entities.CreditCard, entities.Options, bool) {
	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return 0, nil, entities.Options{}, false
	}
	amount, err := payload.ResolveAmount(payload.Options.CurrencyOrDefault())
	if err != nil {
		h.fail(c, err)
		return 0, nil, entities.Options{}, false
	}
	if payload.Card != nil {
		if err := payload.Card.Validate(); err != nil {
			h.fail(c, err)
			return 0, nil, entities.Options{}, false
		}
	}
	return amount, payload.Card.ToEntity(), payload.Options, true
}

func (h *GatewayHandler) bindCard(c *gin.Context) (*entities.CreditCard, entities.Options, bool) {
	var payload request.CardOnlyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return nil, entities.Options{}, false
	}
	if payload.Card == nil {
		h.fail(c, request.ErrMissingCard)
		return nil, entities.Options{}, false
	}
	if err := payload.Card.Validate(); err != nil {
		h.fail(c, err)
		return nil, entities.Options{}, false
	}
	return payload.Card.ToEntity(), payload.Options, true
}

func (h *GatewayHandler) bindFollowUp(c *gin.Context) (int64, entities.Options, bool) {
	var payload request.FollowUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return 0, entities.Options{}, false
	}
	amount, err := payload.ResolveAmount(payload.Options.CurrencyOrDefault())
	if err != nil {
		h.fail(c, err)
		return 0, entities.Options{}, false
	}
	return amount, payload.Options, true
}

// bindOptionalJSON accepts an empty body.
func bindOptionalJSON(c *gin.Context, out any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return false
	}
	return true
}

func (h *GatewayHandler) respond(c *gin.Context, op entities.Operation, result entities.GatewayResult, err error) {
	log := h.logger.With(
		slog.String("merchant_id", c.Param("merchant_id")),
		slog.String("operation", string(op)),
		slog.String("request_id", c.GetString(RequestIDKey)),
	)
	if err != nil {
		log.Warn("[gateway][handler] operation failed", "err", err)
		h.fail(c, err)
		return
	}
	log.Info("[gateway][handler] operation done",
		slog.Bool("success", result.Success),
		slog.String("error_code", string(result.ErrorCode)),
	)
	c.JSON(http.StatusOK, response.FromGatewayResult(result))
}

func (h *GatewayHandler) fail(c *gin.Context, err error) {
	appErr := mapGatewayError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapGatewayError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrMissingAmount), errors.Is(err, request.ErrAmbiguousAmount),
		errors.Is(err, request.ErrInvalidDecimal), errors.Is(err, request.ErrMissingCard),
		errors.Is(err, expiry.ErrInvalidExpiry),
		errors.Is(err, entities.ErrInvalidAmount), errors.Is(err, entities.ErrMissingCard),
		errors.Is(err, entities.ErrMissingAuthorization), errors.Is(err, entities.ErrMissingVaultID),
		errors.Is(err, usecase.ErrInvalidMerchantID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProcessor), errors.Is(err, entities.ErrUnknownProcessor),
		errors.Is(err, entities.ErrMissingCredential):
		return pkg.NewDomainError("INVALID_MERCHANT_CONFIG", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrMerchantNotFound):
		return pkg.NewDomainErrorSimple("MERCHANT_NOT_FOUND", "Merchant not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrMerchantExists):
		return pkg.NewDomainErrorSimple("MERCHANT_EXISTS", "Merchant already exists", http.StatusConflict)
	case errors.Is(err, entities.ErrUnsupportedOperation):
		return pkg.NewDomainError("UNSUPPORTED_OPERATION", "Operation not supported by processor", err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrMalformedResponse):
		return pkg.NewDomainError("PROCESSOR_BAD_RESPONSE", "Processor returned an unreadable response", err, http.StatusBadGateway)
	case errors.Is(err, entities.ErrTransport):
		return pkg.NewDomainError("PROCESSOR_UNAVAILABLE", "Processor unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
