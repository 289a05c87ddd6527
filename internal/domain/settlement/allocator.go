package settlement

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits stored for monetary columns
const MoneyScale = 2

// Allocation is the part of a settlement applied to one debt
type Allocation struct {
	DebtID     uuid.UUID       `json:"debt_id"`
	Applied    decimal.Decimal `json:"applied"`
	PaidBefore decimal.Decimal `json:"paid_before"`
	PaidAfter  decimal.Decimal `json:"paid_after"`
	DueBefore  decimal.Decimal `json:"due_before"`
	DueAfter   decimal.Decimal `json:"due_after"`
}

// Plan is a complete allocation of an amount across an owner's debts.
// A Plan only exists when the whole amount fits, so Remaining is zero for
// every plan returned by Allocate.
type Plan struct {
	OwnerKey    string          `json:"owner_key"`
	Amount      decimal.Decimal `json:"amount"`
	Allocations []Allocation    `json:"allocations"`
	Remaining   decimal.Decimal `json:"remaining"`
}

// ValidateAmount rejects non-positive amounts and amounts finer than cents
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return ErrInvalidAmount
	}
	return nil
}

// Allocate spreads amount over debts oldest first.
// The debts slice is not modified; use Plan.Apply to obtain updated copies.
func Allocate(ownerKey string, amount decimal.Decimal, debts []Debt) (*Plan, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	ordered := make([]Debt, 0, len(debts))
	for _, d := range debts {
		if d.IsOutstanding() {
			ordered = append(ordered, d)
		}
	}
	if len(ordered) == 0 {
		return nil, ErrNoOutstandingDebt
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	remaining := amount
	allocations := make([]Allocation, 0, len(ordered))
	for _, d := range ordered {
		if !remaining.IsPositive() {
			break
		}
		applied := decimal.Min(remaining, d.DueAmount)
		allocations = append(allocations, Allocation{
			DebtID:     d.ID,
			Applied:    applied,
			PaidBefore: d.PaidAmount,
			PaidAfter:  d.PaidAmount.Add(applied),
			DueBefore:  d.DueAmount,
			DueAfter:   d.DueAmount.Sub(applied),
		})
		remaining = remaining.Sub(applied)
	}

	if remaining.IsPositive() {
		return nil, ErrAmountExceedsDue
	}

	return &Plan{
		OwnerKey:    ownerKey,
		Amount:      amount,
		Allocations: allocations,
		Remaining:   remaining,
	}, nil
}

// Applied returns the sum of all allocations
func (p *Plan) Applied() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Allocations {
		total = total.Add(a.Applied)
	}
	return total
}

// Apply returns copies of the debts touched by the plan with their new
// paid and due amounts, in allocation order. Debts not in the plan are omitted.
func (p *Plan) Apply(debts []Debt) []Debt {
	byID := make(map[uuid.UUID]Debt, len(debts))
	for _, d := range debts {
		byID[d.ID] = d
	}

	updated := make([]Debt, 0, len(p.Allocations))
	for _, a := range p.Allocations {
		d, ok := byID[a.DebtID]
		if !ok {
			continue
		}
		d.PaidAmount = a.PaidAfter
		d.DueAmount = a.DueAfter
		updated = append(updated, d)
	}
	return updated
}
