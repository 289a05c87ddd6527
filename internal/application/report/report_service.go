package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shopledger/backend/internal/domain/report"
	"github.com/shopledger/backend/internal/domain/shared"
)

// DefaultCacheTTL is how long a cached report stays fresh without an invalidating event
const DefaultCacheTTL = 5 * time.Minute

const overviewCacheKey = "overview"

// Service builds the dashboard and profit reports
type Service struct {
	repo     report.Repository
	clock    shared.Clock
	cache    report.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService creates a report Service. A nil cache disables caching.
func NewService(repo report.Repository, clock shared.Clock, cache report.Cache, logger *zap.Logger) *Service {
	if clock == nil {
		clock = shared.NewSystemClock(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		clock:    clock,
		cache:    cache,
		cacheTTL: DefaultCacheTTL,
		logger:   logger,
	}
}

// SetCacheTTL overrides the cache lifetime
func (s *Service) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		s.cacheTTL = ttl
	}
}

// Overview returns catalog counts, outstanding dues and the standard window totals
func (s *Service) Overview(ctx context.Context) (*report.Overview, error) {
	var cached report.Overview
	if s.fromCache(ctx, overviewCacheKey, &cached) {
		return &cached, nil
	}

	now := s.clock.Now()
	counts, err := s.repo.CatalogCounts(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.repo.CustomerCount(ctx)
	if err != nil {
		return nil, err
	}
	due, err := s.repo.TotalDue(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.SalesRecords(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	result := report.Aggregate(records, report.StandardWindows(), now)
	all, _ := result.Get(report.AllTime().Name)

	overview := &report.Overview{
		GeneratedAt:     now,
		TotalProducts:   counts.Products,
		TotalCategories: counts.Categories,
		TotalCustomers:  customers,
		TotalDueAmount:  due.Round(2),
		TotalSales:      all.Sales.Round(2),
		TotalProfit:     all.Profit.Round(2),
		Sales:           pick(result, report.SalesWindows()),
		HourlyProfit:    pick(result, report.HourWindows()),
	}

	s.toCache(ctx, overviewCacheKey, overview)
	return overview, nil
}

// ProfitByRange lists the orders of a named range with their profit.
// An empty range means today.
func (s *Service) ProfitByRange(ctx context.Context, filter ProfitRangeFilter) (*report.ProfitStatement, error) {
	window, err := report.NamedRange(filter.Range)
	if err != nil {
		return nil, err
	}
	return s.statement(ctx, window, s.clock.Now())
}

// ProfitWindow lists orders of the last N hours or of a date range.
// Missing dates leave that side of the range open.
func (s *Service) ProfitWindow(ctx context.Context, filter ProfitWindowFilter) (*report.ProfitStatement, error) {
	now := s.clock.Now()

	var window report.Window
	switch filter.FilterBy {
	case FilterByHour:
		hours := filter.HoursAgo
		if hours < 1 {
			hours = DefaultHoursAgo
		}
		window = report.Relative(fmt.Sprintf("last_%d_hours", hours), hours, report.Hour)
	case FilterByDateRange:
		start, err := parseDate(filter.StartDate, now.Location())
		if err != nil {
			return nil, err
		}
		end, err := parseDate(filter.EndDate, now.Location())
		if err != nil {
			return nil, err
		}
		if start != nil && end != nil && end.Before(*start) {
			return nil, shared.ErrInvalidInput.WithMessage("end_date must not be before start_date")
		}
		window = report.DateRange(start, end)
	case "":
		window = report.AllTime()
	default:
		return nil, shared.ErrInvalidInput.WithMessage(fmt.Sprintf("Unknown filter_by %q", filter.FilterBy))
	}
	return s.statement(ctx, window, now)
}

// Inventory lists products with their category and stock
func (s *Service) Inventory(ctx context.Context, filter InventoryFilter) ([]report.InventoryItem, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.LowStock != nil {
		domainFilter.Filters["low_stock"] = *filter.LowStock
	}
	domainFilter.OrderBy, domainFilter.OrderDir = "product_name", "asc"
	if filter.SortBy != "" {
		domainFilter.OrderBy = filter.SortBy
		if filter.SortDesc {
			domainFilter.OrderDir = "desc"
		}
	}

	items, total, err := s.repo.Inventory(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []report.InventoryItem{}
	}
	return items, total, nil
}

// Invalidate drops every cached report
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.InvalidateAll(ctx)
}

// statement loads the window's orders and derives per-order and total profit
func (s *Service) statement(ctx context.Context, window report.Window, now time.Time) (*report.ProfitStatement, error) {
	from, to := window.Bounds(now)
	records, err := s.repo.SalesRecords(ctx, from, to)
	if err != nil {
		return nil, err
	}

	selected := report.NewSnapshot(records).Select(window, now)
	totals := report.Aggregate(selected, []report.Window{report.AllTime()}, now).Windows[0].Totals

	lines := make([]report.ProfitLine, 0, len(selected))
	for _, r := range selected {
		line := report.NewProfitLine(r)
		line.Profit = line.Profit.Round(2)
		lines = append(lines, line)
	}

	return &report.ProfitStatement{
		Window:           window.Name,
		From:             from,
		To:               to,
		TotalSales:       totals.Sales.Round(2),
		TotalBuyingPrice: totals.Cost.Round(2),
		TotalProfit:      totals.Profit.Round(2),
		OrderCount:       totals.Count,
		Orders:           lines,
	}, nil
}

func (s *Service) fromCache(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("discarding malformed cached report", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("report not cacheable", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.logger.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// pick returns the window totals in the order of windows, rounded for output
func pick(result report.Result, windows []report.Window) []report.WindowTotals {
	out := make([]report.WindowTotals, 0, len(windows))
	for _, w := range windows {
		totals, _ := result.Get(w.Name)
		out = append(out, report.WindowTotals{
			Window: w.Name,
			Totals: report.Totals{
				Sales:  totals.Sales.Round(2),
				Cost:   totals.Cost.Round(2),
				Profit: totals.Profit.Round(2),
				Count:  totals.Count,
			},
		})
	}
	return out
}

func parseDate(value string, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return nil, shared.ErrInvalidInput.WithMessage(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", value))
	}
	return &t, nil
}
