package routes

import (
	"log"
	"os"
	"strconv"

	_ "resultados/docs" // This will be auto-generated
	"resultados/internal/adapter/http/handlers"
	repository2 "resultados/internal/adapter/persistence/repository"
	"resultados/internal/infrastructure/boundsapi"
	"resultados/internal/infrastructure/database"
	"resultados/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := PORT
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}
	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	drawRepo := repository2.NewDrawDynamoRepository(ddb)
	prizeRepo := repository2.NewPrizeDynamoRepository(ddb)
	boundsClient := boundsapi.NewClientFromEnv()

	drawUseCase := usecase.NewDrawQueryUseCase(drawRepo, prizeRepo, boundsClient)

	drawHandler := handlers.NewDrawHandler(drawUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDrawRoutes(v1, drawHandler)
}

func setMiddlewares() {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// requestID tags every request so log lines of one query can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
