//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	partnerapp "github.com/shopledger/backend/internal/application/partner"
	settlementapp "github.com/shopledger/backend/internal/application/settlement"
	tradeapp "github.com/shopledger/backend/internal/application/trade"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopledger/backend/tests/testutil"
)

func customerDue(t *testing.T, s *TestServer, number int) string {
	t.Helper()
	w := s.API.Get(fmt.Sprintf("/api/v1/customers/%d/due", number))
	return testutil.RequireData[partnerapp.DueResponse](t, w, http.StatusOK).TotalDue.StringFixed(2)
}

func payDue(s *TestServer, number int, amount string, headers ...string) *httptest.ResponseRecorder {
	w := s.API.Do(http.MethodPost, fmt.Sprintf("/api/v1/customers/%d/pay-due", number),
		map[string]any{"amount": amount}, headers...)
	return w
}

func TestCustomerSettlement_OldestFirst(t *testing.T) {
	s := NewTestServer(t)
	cat := s.createCategory(t, "Beverages")
	cola := s.createProduct(t, cat.ID, "BEV-001", "10.00", "6.00", 100)

	first := s.placeOrder(t, 0, "10", line{cola.ID, 3})
	number := first.CustomerNumber
	second := s.placeOrder(t, number, "5", line{cola.ID, 2})
	assert.Equal(t, "20.00", first.DueAmount.StringFixed(2))
	assert.Equal(t, "15.00", second.DueAmount.StringFixed(2))
	assert.Equal(t, "35.00", customerDue(t, s, number))

	t.Run("rejects more than owed without touching orders", func(t *testing.T) {
		testutil.AssertError(t, payDue(s, number, "40"), http.StatusUnprocessableEntity, "ERR_AMOUNT_EXCEEDS_DUE")
		assert.Equal(t, "35.00", customerDue(t, s, number))
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		testutil.AssertError(t, payDue(s, number, "0"), http.StatusBadRequest, "ERR_INVALID_AMOUNT")
		testutil.AssertError(t, payDue(s, number, "-5"), http.StatusBadRequest, "ERR_INVALID_AMOUNT")
	})

	t.Run("settles the older order first", func(t *testing.T) {
		w := payDue(s, number, "25", "Idempotency-Key", "till-1-0001")
		resp := testutil.RequireData[settlementapp.CustomerPaymentResponse](t, w, http.StatusOK)

		assert.Equal(t, settlementapp.CustomerPaidMessage, resp.Message)
		assert.Equal(t, "35.00", resp.TotalDueBefore.StringFixed(2))
		assert.Equal(t, "10.00", resp.TotalDueAfter.StringFixed(2))
		require.Len(t, resp.Allocations, 2)
		assert.Equal(t, first.ID, resp.Allocations[0].DebtID)
		assert.Equal(t, "20.00", resp.Allocations[0].Applied.StringFixed(2))
		assert.True(t, resp.Allocations[0].DueAfter.IsZero())
		assert.Equal(t, second.ID, resp.Allocations[1].DebtID)
		assert.Equal(t, "5.00", resp.Allocations[1].Applied.StringFixed(2))

		var stored trade.Order
		require.NoError(t, s.DB.First(&stored, "id = ?", first.ID).Error)
		assert.Equal(t, "30.00", stored.PaidAmount.StringFixed(2))
		assert.True(t, stored.DueAmount.IsZero())
	})

	t.Run("replayed key is refused", func(t *testing.T) {
		testutil.AssertError(t, payDue(s, number, "25", "Idempotency-Key", "till-1-0001"), http.StatusConflict, "ERR_DUPLICATE_REQUEST")
		assert.Equal(t, "10.00", customerDue(t, s, number))
	})

	t.Run("nothing left to settle", func(t *testing.T) {
		w := payDue(s, number, "10")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		testutil.AssertError(t, payDue(s, number, "1"), http.StatusNotFound, "ERR_NO_OUTSTANDING_DEBT")
	})

	assert.Equal(t, 2, s.Events.Count("DueSettled"))
}

func TestCustomerSettlement_ConcurrentPayments(t *testing.T) {
	s := NewTestServer(t)
	cat := s.createCategory(t, "Snacks")
	chips := s.createProduct(t, cat.ID, "SNK-001", "20.00", "12.00", 50)

	order := s.placeOrder(t, 0, "0", line{chips.ID, 5})
	number := order.CustomerNumber
	s.placeOrder(t, number, "0", line{chips.ID, 5})
	require.Equal(t, "200.00", customerDue(t, s, number))

	const payments = 10
	codes := make([]int, payments)
	var wg sync.WaitGroup
	for i := 0; i < payments; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = payDue(s, number, "15").Code
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, code := range codes {
		if code == http.StatusOK {
			succeeded++
			continue
		}
		// lost races are retryable and leave nothing behind
		assert.Equal(t, http.StatusServiceUnavailable, code)
	}
	require.Positive(t, succeeded)

	var orders []trade.Order
	require.NoError(t, s.DB.Where("customer_number = ?", number).Order("created_at, id").Find(&orders).Error)
	paid := testutil.Money("0")
	for _, o := range orders {
		paid = paid.Add(o.PaidAmount)
		assert.True(t, o.PaidAmount.Add(o.DueAmount).Equal(o.TotalPrice), "order %s does not balance", o.ID)
	}
	assert.Equal(t, testutil.Money("15").Mul(testutil.Money(fmt.Sprint(succeeded))).StringFixed(2), paid.StringFixed(2))
}

func TestSupplierSettlement(t *testing.T) {
	s := NewTestServer(t)
	cat := s.createCategory(t, "Household")
	soap := s.createProduct(t, cat.ID, "HH-001", "3.40", "2.10", 0)
	supplier := s.createSupplier(t, "Northside Wholesale")

	record := func(qty int, payment string) tradeapp.PurchaseResponse {
		w := s.API.Do(http.MethodPost, "/api/v1/purchases", map[string]any{
			"product_id":          soap.ID,
			"supplier_id":         supplier.ID,
			"purchase_quantity":   qty,
			"purchase_price":      "2.00",
			"purchase_date":       "2026-03-01",
			"payment_bill_amount": payment,
		})
		return testutil.RequireData[tradeapp.PurchaseResponse](t, w, http.StatusCreated)
	}
	older := record(10, "5")
	newer := record(20, "0")
	assert.Equal(t, "15.00", older.DueBillAmount.StringFixed(2))

	adjust := func(amount string) *httptest.ResponseRecorder {
		return s.API.Do(http.MethodPost, fmt.Sprintf("/api/v1/suppliers/%s/adjust-due", supplier.ID),
			map[string]any{"amount": amount})
	}

	testutil.AssertError(t, adjust("60"), http.StatusUnprocessableEntity, "ERR_AMOUNT_EXCEEDS_DUE")

	resp := testutil.RequireData[settlementapp.SupplierAdjustmentResponse](t, adjust("25"), http.StatusOK)
	assert.Equal(t, settlementapp.SupplierAdjustedMessage, resp.Message)
	require.Len(t, resp.Allocations, 2)
	assert.Equal(t, older.ID, resp.Allocations[0].DebtID)
	assert.Equal(t, newer.ID, resp.Allocations[1].DebtID)
	assert.Equal(t, "30.00", resp.TotalDueAfter.StringFixed(2))

	w := s.API.Get(fmt.Sprintf("/api/v1/suppliers/%s/due", supplier.ID))
	assert.Equal(t, "30.00", testutil.RequireData[partnerapp.DueResponse](t, w, http.StatusOK).TotalDue.StringFixed(2))

	// purchases restock the product
	w = s.API.Get(fmt.Sprintf("/api/v1/products/%s", soap.ID))
	product := testutil.RequireData[map[string]any](t, w, http.StatusOK)
	assert.EqualValues(t, 30, product["stock_amount"])
}
