package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesRecord is the reporting projection of a sales order
type SalesRecord struct {
	ID               uuid.UUID       `json:"id"`
	CustomerName     string          `json:"customer_name"`
	CustomerNumber   int             `json:"customer_number"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	TotalBuyingPrice decimal.Decimal `json:"total_buying_price"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Profit is always derived from price and cost, never stored
func (r SalesRecord) Profit() decimal.Decimal {
	return r.TotalPrice.Sub(r.TotalBuyingPrice)
}

// Totals are the sums over the records of one window
type Totals struct {
	Sales  decimal.Decimal `json:"sales"`
	Cost   decimal.Decimal `json:"cost"`
	Profit decimal.Decimal `json:"profit"`
	Count  int             `json:"count"`
}

func zeroTotals() Totals {
	return Totals{Sales: decimal.Zero, Cost: decimal.Zero, Profit: decimal.Zero}
}

func (t *Totals) add(r SalesRecord) {
	t.Sales = t.Sales.Add(r.TotalPrice)
	t.Cost = t.Cost.Add(r.TotalBuyingPrice)
	t.Profit = t.Profit.Add(r.Profit())
	t.Count++
}

// Snapshot holds records sorted by creation time so that every window is
// answered with two binary searches.
type Snapshot struct {
	records []SalesRecord
}

// NewSnapshot copies and sorts the records
func NewSnapshot(records []SalesRecord) *Snapshot {
	sorted := make([]SalesRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return &Snapshot{records: sorted}
}

// Len returns the number of records in the snapshot
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Select returns a copy of the records inside the window, oldest first
func (s *Snapshot) Select(w Window, now time.Time) []SalesRecord {
	lo, hi := s.span(w, now)
	if lo >= hi {
		return nil
	}
	out := make([]SalesRecord, hi-lo)
	copy(out, s.records[lo:hi])
	return out
}

// Evaluate sums the records inside the window
func (s *Snapshot) Evaluate(w Window, now time.Time) Totals {
	totals := zeroTotals()
	lo, hi := s.span(w, now)
	for i := lo; i < hi; i++ {
		totals.add(s.records[i])
	}
	return totals
}

// span locates the window as a half-open index range over the sorted records
func (s *Snapshot) span(w Window, now time.Time) (lo, hi int) {
	from, to := w.Bounds(now)

	hi = len(s.records)
	if from != nil {
		lo = sort.Search(len(s.records), func(i int) bool {
			return !s.records[i].CreatedAt.Before(*from)
		})
	}
	if to != nil {
		hi = sort.Search(len(s.records), func(i int) bool {
			return s.records[i].CreatedAt.After(*to)
		})
	}
	return lo, hi
}

// WindowTotals pairs a window name with its totals
type WindowTotals struct {
	Window string `json:"window"`
	Totals
}

// Result holds per-window totals in request order
type Result struct {
	EvaluatedAt time.Time      `json:"evaluated_at"`
	Windows     []WindowTotals `json:"windows"`
}

// Get returns the totals of a window by name
func (r Result) Get(name string) (Totals, bool) {
	for _, w := range r.Windows {
		if w.Window == name {
			return w.Totals, true
		}
	}
	return zeroTotals(), false
}

// Aggregate evaluates every window against the same instant and snapshot
func Aggregate(records []SalesRecord, windows []Window, now time.Time) Result {
	snapshot := NewSnapshot(records)
	result := Result{
		EvaluatedAt: now,
		Windows:     make([]WindowTotals, 0, len(windows)),
	}
	for _, w := range windows {
		result.Windows = append(result.Windows, WindowTotals{
			Window: w.Name,
			Totals: snapshot.Evaluate(w, now),
		})
	}
	return result
}
