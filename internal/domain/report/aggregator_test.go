package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func record(at time.Time, price, cost string) SalesRecord {
	return SalesRecord{
		ID:               uuid.New(),
		TotalPrice:       decimal.RequireFromString(price),
		TotalBuyingPrice: decimal.RequireFromString(cost),
		CreatedAt:        at,
	}
}

func fixture() []SalesRecord {
	return []SalesRecord{
		record(now.Add(-30*time.Minute), "100.00", "60.00"),
		record(now.Add(-4*time.Hour), "50.00", "45.50"),
		record(now.Add(-13*time.Hour), "10.00", "4.00"),
		record(now.AddDate(0, 0, -2), "80.00", "70.00"),
		record(now.AddDate(0, 0, -5), "25.00", "30.00"),
		record(now.AddDate(0, 0, -10), "200.00", "150.00"),
		record(now.AddDate(0, -2, 0), "300.00", "200.00"),
		record(now.AddDate(0, -5, 0), "40.00", "10.00"),
		record(now.AddDate(0, -11, 0), "60.00", "20.00"),
		record(now.AddDate(-2, 0, 0), "999.99", "0.99"),
	}
}

func TestSalesRecord_Profit(t *testing.T) {
	r := record(now, "19.99", "7.49")
	assert.True(t, r.Profit().Equal(decimal.RequireFromString("12.50")))

	loss := record(now, "25.00", "30.00")
	assert.True(t, loss.Profit().Equal(decimal.RequireFromString("-5.00")))
}

func TestAggregate_StandardWindows(t *testing.T) {
	result := Aggregate(fixture(), StandardWindows(), now)
	assert.Equal(t, now, result.EvaluatedAt)

	tests := []struct {
		window string
		count  int
		sales  string
		profit string
	}{
		{RangeAllTime, 10, "1864.99", "1274.50"},
		{RangeToday, 3, "160.00", "50.50"},
		{RangeLast3Days, 4, "240.00", "60.50"},
		{RangeLast7Days, 5, "265.00", "55.50"},
		{RangeLast15Days, 6, "465.00", "105.50"},
		{RangeLast1Month, 6, "465.00", "105.50"},
		{RangeLast3Months, 7, "765.00", "205.50"},
		{RangeLast6Months, 8, "805.00", "235.50"},
		{RangeLast1Year, 9, "865.00", "275.50"},
		{RangeLast3Hours, 1, "100.00", "40.00"},
		{RangeLast5Hours, 2, "150.00", "44.50"},
		{RangeLast8Hours, 2, "150.00", "44.50"},
	}

	for _, tt := range tests {
		t.Run(tt.window, func(t *testing.T) {
			totals, ok := result.Get(tt.window)
			require.True(t, ok)
			assert.Equal(t, tt.count, totals.Count)
			assert.Equal(t, tt.sales, totals.Sales.StringFixed(2))
			assert.Equal(t, tt.profit, totals.Profit.StringFixed(2))
			assert.True(t, totals.Sales.Sub(totals.Cost).Equal(totals.Profit))
		})
	}
}

func TestAggregate_NestedWindows(t *testing.T) {
	snapshot := NewSnapshot(fixture())

	ids := func(w Window) map[uuid.UUID]bool {
		set := map[uuid.UUID]bool{}
		for _, r := range snapshot.Select(w, now) {
			set[r.ID] = true
		}
		return set
	}

	today := ids(Today())
	last3 := ids(Relative("3d", 3, Day))
	last7 := ids(Relative("7d", 7, Day))

	for id := range today {
		assert.True(t, last3[id], "today must be inside last 3 days")
	}
	for id := range last3 {
		assert.True(t, last7[id], "last 3 days must be inside last 7 days")
	}
}

func TestSnapshot_RelativeLowerBoundIsInclusive(t *testing.T) {
	edge := record(now.Add(-3*time.Hour), "10", "5")
	before := record(now.Add(-3*time.Hour-time.Nanosecond), "10", "5")
	snapshot := NewSnapshot([]SalesRecord{before, edge})

	selected := snapshot.Select(Relative("3h", 3, Hour), now)
	require.Len(t, selected, 1)
	assert.Equal(t, edge.ID, selected[0].ID)
}

func TestSnapshot_SelectedRecordsAreDetached(t *testing.T) {
	snapshot := NewSnapshot(fixture())
	week := Relative("7d", 7, Day)
	before := snapshot.Evaluate(week, now)

	selected := snapshot.Select(Today(), now)
	require.NotEmpty(t, selected)
	selected[0].TotalPrice = decimal.NewFromInt(1_000_000)
	_ = append(selected[:1], record(now, "999", "0"))

	after := snapshot.Evaluate(week, now)
	assert.True(t, before.Sales.Equal(after.Sales), "before %s after %s", before.Sales, after.Sales)
	assert.Equal(t, before.Count, after.Count)
}

func TestSnapshot_DateRange(t *testing.T) {
	records := []SalesRecord{
		record(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "1", "0"),
		record(time.Date(2025, 6, 3, 23, 59, 59, 0, time.UTC), "2", "0"),
		record(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), "4", "0"),
		record(time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC), "8", "0"),
	}
	snapshot := NewSnapshot(records)

	start := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		sales string
	}{
		{"both bounds normalized to whole days", &start, &end, "3"},
		{"start only", &start, nil, "7"},
		{"end only", nil, &end, "11"},
		{"unbounded", nil, nil, "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := snapshot.Evaluate(DateRange(tt.start, tt.end), now)
			assert.Equal(t, tt.sales, totals.Sales.String())
		})
	}
}

func TestSnapshot_EmptyAndInvertedRanges(t *testing.T) {
	snapshot := NewSnapshot(fixture())
	start := now
	end := now.AddDate(0, 0, -1)

	assert.Empty(t, snapshot.Select(Between("inverted", &start, &end), now))
	assert.Equal(t, 0, NewSnapshot(nil).Evaluate(Today(), now).Count)
	assert.True(t, NewSnapshot(nil).Evaluate(Today(), now).Sales.IsZero())
}

func TestNewSnapshot_DoesNotReorderInput(t *testing.T) {
	records := []SalesRecord{
		record(now, "1", "0"),
		record(now.Add(-time.Hour), "2", "0"),
	}
	first := records[0].ID

	NewSnapshot(records)
	assert.Equal(t, first, records[0].ID)
}

func TestWindow_MonthsUseCalendarArithmetic(t *testing.T) {
	at := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	from, to := Relative("1m", 1, Month).Bounds(at)

	require.NotNil(t, from)
	assert.Nil(t, to)
	assert.Equal(t, at.AddDate(0, -1, 0), *from)
}

func TestWindow_TodayFollowsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*3600)
	at := time.Date(2025, 6, 15, 2, 0, 0, 0, loc)

	from, _ := Today().Bounds(at)
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, loc), *from)
	assert.True(t, Today().Contains(at.Add(-time.Hour), at))
	assert.False(t, Today().Contains(at.Add(-3*time.Hour), at))
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	eod := EndOfDay(d)

	assert.Equal(t, 15, eod.Day())
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), eod.Add(time.Nanosecond))
}

func TestNamedRange(t *testing.T) {
	w, err := NamedRange("")
	require.NoError(t, err)
	assert.Equal(t, RangeToday, w.Name)

	w, err = NamedRange(RangeLast6Months)
	require.NoError(t, err)
	assert.Equal(t, RangeLast6Months, w.Name)

	_, err = NamedRange("last_2_weeks")
	assert.ErrorIs(t, err, ErrUnknownRange)
}

func TestStandardWindows(t *testing.T) {
	names := []string{}
	for _, w := range StandardWindows() {
		names = append(names, w.Name)
	}
	assert.Equal(t, []string{
		RangeAllTime, RangeToday, RangeLast3Days, RangeLast7Days, RangeLast15Days,
		RangeLast1Month, RangeLast3Months, RangeLast6Months, RangeLast1Year,
		RangeLast3Hours, RangeLast5Hours, RangeLast8Hours,
	}, names)
}
