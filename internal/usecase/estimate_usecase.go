package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"printhub/internal/domain/entities"
	"printhub/internal/domain/pricing"
	"printhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound    = errors.New("estimate not found")
	ErrInvalidClientID     = errors.New("invalid client id")
	ErrInvalidEstimateID   = errors.New("invalid estimate id")
	ErrInvalidEstimateData = errors.New("invalid estimate data")
	ErrInvalidStatus       = errors.New("invalid estimate status")
)

// IEstimateUseCase exposes the estimator and the saved-estimate lifecycle.
//
// Calculation operations are pure and never touch the repository; the save
// and lifecycle operations orchestrate persistence around a quote snapshot.
type IEstimateUseCase interface {
	CalculateQuote(ctx context.Context, req pricing.QuoteRequest) (entities.Quote, error)
	CalculateBulkQuote(ctx context.Context, reqs []pricing.QuoteRequest) pricing.BulkQuote
	PricingTable(ctx context.Context) pricing.Table
	SaveEstimate(ctx context.Context, input SaveEstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context, filter interfaces.EstimateFilter) ([]entities.Estimate, error)
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)
}

// SaveEstimateInput carries everything needed to persist a calculated quote.
type SaveEstimateInput struct {
	ClientID  string
	ProjectID string
	Quote     entities.Quote
	Notes     string
	Status    entities.EstimateStatus
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	estimator *pricing.Estimator
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, estimator *pricing.Estimator) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, estimator: estimator}
}

func (u *EstimateUseCase) CalculateQuote(_ context.Context, req pricing.QuoteRequest) (entities.Quote, error) {
	return u.estimator.Calculate(req)
}

func (u *EstimateUseCase) CalculateBulkQuote(_ context.Context, reqs []pricing.QuoteRequest) pricing.BulkQuote {
	return u.estimator.CalculateBulk(reqs)
}

func (u *EstimateUseCase) PricingTable(_ context.Context) pricing.Table {
	return u.estimator.Table()
}

func (u *EstimateUseCase) SaveEstimate(ctx context.Context, input SaveEstimateInput) (entities.Estimate, error) {
	input.ClientID = strings.TrimSpace(input.ClientID)
	if input.ClientID == "" {
		return entities.Estimate{}, ErrInvalidClientID
	}
	if input.Quote.Total <= 0 {
		return entities.Estimate{}, ErrInvalidEstimateData
	}
	if input.Status == "" {
		input.Status = entities.EstimateStatusDraft
	}
	if !input.Status.Valid() {
		return entities.Estimate{}, ErrInvalidStatus
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:          uuid.NewString(),
		ClientID:    input.ClientID,
		ProjectID:   strings.TrimSpace(input.ProjectID),
		Quote:       input.Quote,
		Notes:       input.Notes,
		Status:      input.Status,
		TotalAmount: input.Quote.Total,
		Currency:    input.Quote.Currency,
		ValidUntil:  input.Quote.ValidUntil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	log.Printf("[estimator][usecase] saving estimate id=%s client_id=%s total=%.2f", e.ID, e.ClientID, e.TotalAmount)
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) List(ctx context.Context, filter interfaces.EstimateFilter) ([]entities.Estimate, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.repo.List(ctx, filter)
}

func (u *EstimateUseCase) UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if !status.Valid() {
		return entities.Estimate{}, ErrInvalidStatus
	}

	// Approval stamps the transition time; every other status clears it.
	var approvedAt *time.Time
	if status == entities.EstimateStatusApproved {
		now := time.Now().UTC()
		approvedAt = &now
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status, approvedAt)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}
