package handlers

import (
	"net/http"

	request "merchant_gateway/internal/adapter/http/dto/request"
	response "merchant_gateway/internal/adapter/http/dto/response"
	"merchant_gateway/internal/usecase"
	"merchant_gateway/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

var errInvalidMerchantPayload = pkg.NewDomainErrorSimple("INVALID_MERCHANT_INPUT", "Invalid merchant payload", http.StatusBadRequest)

// MerchantHandler manages merchant processor profiles.
type MerchantHandler struct {
	usecase usecase.IMerchantGatewayUseCase
	logger  *slog.Logger
}

func NewMerchantHandler(uc usecase.IMerchantGatewayUseCase, logger *slog.Logger) *MerchantHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MerchantHandler{usecase: uc, logger: logger}
}

// CreateMerchant godoc
// @Summary      Register a merchant processor account
// @Tags         merchants
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateMerchantRequest  true  "Merchant"
// @Success      201  {object}  response.MerchantResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /merchants [post]
func (h *MerchantHandler) CreateMerchant(c *gin.Context) {
	var payload request.CreateMerchantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMerchantPayload.HTTPStatus, errInvalidMerchantPayload.ToHTTPError())
		return
	}

	m, err := h.usecase.CreateMerchant(c.Request.Context(), usecase.CreateMerchantInput{
		ID:          payload.ID,
		Processor:   payload.Processor,
		Test:        payload.Test,
		Credentials: payload.Credentials,
		BaseURL:     payload.BaseURL,
	})
	if err != nil {
		h.logger.Warn("[merchant][handler] create failed", slog.String("processor", payload.Processor), "err", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("[merchant][handler] create success", slog.String("merchant_id", m.ID))
	c.JSON(http.StatusCreated, response.FromMerchant(m))
}

// GetMerchant godoc
// @Summary      Show a merchant without credential values
// @Tags         merchants
// @Produce      json
// @Param        merchant_id  path  string  true  "Merchant ID"
// @Success      200  {object}  response.MerchantResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /merchants/{merchant_id} [get]
func (h *MerchantHandler) GetMerchant(c *gin.Context) {
	m, err := h.usecase.GetMerchant(c.Request.Context(), c.Param("merchant_id"))
	if err != nil {
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMerchant(m))
}

// DeleteMerchant godoc
// @Summary      Remove a merchant
// @Tags         merchants
// @Param        merchant_id  path  string  true  "Merchant ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /merchants/{merchant_id} [delete]
func (h *MerchantHandler) DeleteMerchant(c *gin.Context) {
	merchantID := c.Param("merchant_id")
	if err := h.usecase.DeleteMerchant(c.Request.Context(), merchantID); err != nil {
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("[merchant][handler] delete success", slog.String("merchant_id", merchantID))
	c.Status(http.StatusNoContent)
}
