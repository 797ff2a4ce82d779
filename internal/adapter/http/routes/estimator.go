package routes

import (
	"printhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimator = "/estimator"
)

func addEstimatorRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimator := rg.Group(PathEstimator)
	{
		// Pure calculation endpoints; no persistence involved.
		estimator.POST("/calculate", estimateHandler.Calculate)
		estimator.POST("/bulk-calculate", estimateHandler.BulkCalculate)
		estimator.GET("/pricing-config", estimateHandler.GetPricingConfig)

		// Saved-estimate lifecycle.
		estimator.POST("/estimates", estimateHandler.SaveEstimate)
		estimator.GET("/estimates", estimateHandler.ListEstimates)
		estimator.GET("/estimates/:id", estimateHandler.GetEstimate)
		estimator.PUT("/estimates/:id/status", estimateHandler.UpdateEstimateStatus)
	}
}
