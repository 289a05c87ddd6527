package settlement

import (
	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AggregateTypeSettlement is the aggregate type of settlement events
const AggregateTypeSettlement = "Settlement"

// EventTypeDueSettled is published after a settlement is committed
const EventTypeDueSettled = "DueSettled"

// DueSettledEvent describes a committed settlement
type DueSettledEvent struct {
	shared.BaseDomainEvent
	OwnerKind   OwnerKind       `json:"owner_kind"`
	OwnerKey    string          `json:"owner_key"`
	Amount      decimal.Decimal `json:"amount"`
	Allocations []Allocation    `json:"allocations"`
}

// NewDueSettledEvent creates a DueSettledEvent for a committed plan
func NewDueSettledEvent(kind OwnerKind, plan *Plan) *DueSettledEvent {
	return &DueSettledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDueSettled, AggregateTypeSettlement, uuid.New()),
		OwnerKind:       kind,
		OwnerKey:        plan.OwnerKey,
		Amount:          plan.Amount,
		Allocations:     plan.Allocations,
	}
}
