package routes

import (
	"merchant_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMerchants = "/merchants"
)

func addMerchantRoutes(rg *gin.RouterGroup, merchantHandler *handlers.MerchantHandler, gatewayHandler *handlers.GatewayHandler) {
	merchants := rg.Group(PathMerchants)
	{
		merchants.POST("", merchantHandler.CreateMerchant)
		merchants.GET("/:merchant_id", merchantHandler.GetMerchant)
		merchants.DELETE("/:merchant_id", merchantHandler.DeleteMerchant)
	}

	merchant := merchants.Group("/:merchant_id")
	{
		merchant.POST("/purchase", gatewayHandler.Purchase)
		merchant.POST("/authorize", gatewayHandler.Authorize)
		merchant.POST("/verify", gatewayHandler.Verify)
		merchant.POST("/store", gatewayHandler.Store)
		merchant.PUT("/vault/:vault_id", gatewayHandler.UpdateStored)
		merchant.DELETE("/vault/:vault_id", gatewayHandler.Unstore)
	}

	transactions := merchant.Group("/transactions/:authorization")
	{
		transactions.POST("/capture", gatewayHandler.Capture)
		transactions.POST("/refund", gatewayHandler.Refund)
		transactions.POST("/void", gatewayHandler.Void)
	}
}
