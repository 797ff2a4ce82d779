package handlers

import (
	"errors"
	"net/http"

	request "printhub/internal/adapter/http/dto/request"
	response "printhub/internal/adapter/http/dto/response"
	"printhub/internal/domain/entities"
	"printhub/internal/domain/pricing"
	"printhub/internal/usecase"
	"printhub/internal/usecase/interfaces"
	"printhub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errItemsRequired          = pkg.NewDomainErrorSimple("ITEMS_REQUIRED", "Items array is required", http.StatusBadRequest)
	errSaveFieldsRequired     = pkg.NewDomainErrorSimple("CLIENT_AND_DATA_REQUIRED", "Client ID and estimate data are required", http.StatusBadRequest)
	errStatusRequired         = pkg.NewDomainErrorSimple("STATUS_REQUIRED", "Status is required", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for print-job quotes and saved estimates.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// Calculate godoc
// @Summary      Calculate a print-job quote
// @Tags         estimator
// @Accept       json
// @Produce      json
// @Param        request body request.CalculateRequest true "Quote request"
// @Success      200 {object} response.QuoteResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /estimator/calculate [post]
func (h *EstimateHandler) Calculate(c *gin.Context) {
	var payload request.CalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CalculateQuote(c.Request.Context(), payload.ToQuoteRequest())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// BulkCalculate godoc
// @Summary      Calculate quotes for a batch of print jobs
// @Description  Invalid items are reported inline and never abort the batch.
// @Tags         estimator
// @Accept       json
// @Produce      json
// @Param        request body request.BulkCalculateRequest true "Bulk quote request"
// @Success      200 {object} response.BulkQuoteResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /estimator/bulk-calculate [post]
func (h *EstimateHandler) BulkCalculate(c *gin.Context) {
	var payload request.BulkCalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	if payload.Items == nil {
		c.JSON(errItemsRequired.HTTPStatus, errItemsRequired.ToHTTPError())
		return
	}

	bulk := h.usecase.CalculateBulkQuote(c.Request.Context(), payload.ToQuoteRequests())
	c.JSON(http.StatusOK, response.FromBulkQuote(bulk))
}

// GetPricingConfig godoc
// @Summary      Read the static pricing table
// @Tags         estimator
// @Produce      json
// @Success      200 {object} pricing.Table
// @Router       /estimator/pricing-config [get]
func (h *EstimateHandler) GetPricingConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.PricingTable(c.Request.Context()))
}

// SaveEstimate godoc
// @Summary      Persist a calculated quote for a client
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        request body request.SaveEstimateRequest true "Save request"
// @Success      201 {object} response.EstimateResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /estimator/estimates [post]
func (h *EstimateHandler) SaveEstimate(c *gin.Context) {
	var payload request.SaveEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	if payload.ClientID == "" || payload.EstimateData == nil {
		c.JSON(errSaveFieldsRequired.HTTPStatus, errSaveFieldsRequired.ToHTTPError())
		return
	}

	estimate, err := h.usecase.SaveEstimate(c.Request.Context(), usecase.SaveEstimateInput{
		ClientID:  payload.ClientID,
		ProjectID: payload.ProjectID,
		Quote:     *payload.EstimateData,
		Notes:     payload.Notes,
		Status:    entities.EstimateStatus(payload.Status),
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// ListEstimates godoc
// @Summary      List saved estimates
// @Tags         estimates
// @Produce      json
// @Param        client_id query string false "Filter by client"
// @Param        project_id query string false "Filter by project"
// @Param        status query string false "Filter by status"
// @Success      200 {array} response.EstimateResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /estimator/estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	filter := interfaces.EstimateFilter{
		ClientID:  c.Query("client_id"),
		ProjectID: c.Query("project_id"),
		Status:    entities.EstimateStatus(c.Query("status")),
	}

	estimates, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

// GetEstimate godoc
// @Summary      Fetch one saved estimate
// @Tags         estimates
// @Produce      json
// @Param        id path string true "Estimate ID"
// @Success      200 {object} response.EstimateResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /estimator/estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// UpdateEstimateStatus godoc
// @Summary      Move a saved estimate through its lifecycle
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id path string true "Estimate ID"
// @Param        request body request.UpdateStatusRequest true "New status"
// @Success      200 {object} response.EstimateResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /estimator/estimates/{id}/status [put]
func (h *EstimateHandler) UpdateEstimateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	if payload.Status == "" {
		c.JSON(errStatusRequired.HTTPStatus, errStatusRequired.ToHTTPError())
		return
	}

	estimate, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.EstimateStatus(payload.Status))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrInvalidProductType):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_TYPE", "Invalid product type", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Product type and quantity are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidEstimateData), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
