package main

import (
	_ "resultados/docs"
	"resultados/internal/adapter/http/routes"
	"resultados/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Resultados API
// @version         1.0
// @description     Draw query service (sorteios + premios) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	logging.Init()
	routes.Run()
}
