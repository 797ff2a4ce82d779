package interfaces

import (
	"context"
	"time"

	"printhub/internal/domain/entities"
)

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/mock_estimate_repository.go -package=mock_interfaces

// EstimateFilter narrows List results. Zero-value fields are ignored.
type EstimateFilter struct {
	ClientID  string
	ProjectID string
	Status    entities.EstimateStatus
}

// IEstimateRepository abstracts DynamoDB persistence for saved estimates.
//
// Not-found is reported as a zero-value Estimate with a nil error; the use
// case layer translates that into its own sentinel.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context, filter EstimateFilter) ([]entities.Estimate, error)
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus, approvedAt *time.Time) (entities.Estimate, error)
}
