package entities

import "time"

// EstimateStatus represents the lifecycle of a saved estimate.
//
// Domain notes:
//   - A quote calculation is pure and transient; only saved estimates carry status.
//   - "expired" is derived from valid_until by clients; the service never flips it
//     automatically.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusExpired  EstimateStatus = "expired"
)

// Valid reports whether s is one of the known lifecycle states.
func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusApproved,
		EstimateStatusRejected, EstimateStatusExpired:
		return true
	}
	return false
}

// Estimate is a saved price quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The Quote snapshot is stored verbatim; TotalAmount, Currency and ValidUntil
// are denormalized from it for filtering and listing.
type Estimate struct {
	ID          string         `json:"id"`
	ClientID    string         `json:"client_id"`
	ProjectID   string         `json:"project_id,omitempty"`
	Quote       Quote          `json:"estimate_data"`
	Notes       string         `json:"notes,omitempty"`
	Status      EstimateStatus `json:"status"`
	TotalAmount float64        `json:"total_amount"`
	Currency    string         `json:"currency"`
	ValidUntil  time.Time      `json:"valid_until"`
	ApprovedAt  *time.Time     `json:"approved_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
