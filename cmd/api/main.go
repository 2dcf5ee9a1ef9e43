package main

import (
	_ "quotesmith/docs"
	"quotesmith/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Quotesmith API
// @version         1.0
// @description     Deterministic quote pricing engine (quotes, parameters, deposit payments) backed by DynamoDB.
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
