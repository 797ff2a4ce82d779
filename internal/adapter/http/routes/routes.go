package routes

import (
	"log"
	"strconv"

	_ "printhub/docs" // swag-generated API docs
	"printhub/internal/adapter/http/handlers"
	"printhub/internal/adapter/persistence/repository"
	"printhub/internal/domain/pricing"
	"printhub/internal/infrastructure/database"
	"printhub/internal/usecase"

	"github.com/gin-gonic/gin"
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

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository.NewEstimateDynamoRepository(ddb)

	// The pricing table is loaded once at startup and injected; it is never
	// mutated at runtime.
	estimator := pricing.NewEstimator(pricing.DefaultTable())
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, estimator)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatorRoutes(v1, estimateHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
