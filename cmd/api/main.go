package main

import (
	_ "merchant_gateway/docs"
	"merchant_gateway/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Merchant Gateway API
// @version         1.0
// @description     Processor-neutral card payments (purchase, authorize, capture, refund, void, verify, vault) for stored merchant accounts.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
