package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	tradeapp "github.com/shopledger/backend/internal/application/trade"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopledger/backend/internal/interfaces/http/dto"
)

func setupPurchaseRouter(svc *MockPurchaseService) *gin.Engine {
	h := NewPurchaseHandler(svc)
	router := newTestRouter()
	router.POST("/purchases", h.Record)
	router.GET("/purchases", h.List)
	router.GET("/purchases/form-options", h.FormOptions)
	router.GET("/purchases/products/:id", h.ProductInfo)
	router.GET("/purchases/:id", h.GetByID)
	return router
}

func purchaseBody(productID, supplierID uuid.UUID, price, payment, date string) string {
	return `{"product_id":"` + productID.String() + `","supplier_id":"` + supplierID.String() +
		`","purchase_quantity":10,"purchase_price":"` + price + `","payment_bill_amount":"` + payment +
		`","purchase_date":"` + date + `"}`
}

func TestPurchaseHandler_Record(t *testing.T) {
	productID, supplierID := uuid.New(), uuid.New()

	t.Run("records purchase", func(t *testing.T) {
		svc := new(MockPurchaseService)
		svc.On("RecordPurchase", mock.Anything, mock.MatchedBy(func(req tradeapp.RecordPurchaseRequest) bool {
			return req.ProductID == productID &&
				req.SupplierID == supplierID &&
				req.Quantity == 10 &&
				req.PurchasePrice.Equal(decimal.RequireFromString("4.50")) &&
				req.Payment.Equal(decimal.RequireFromString("20")) &&
				req.PurchaseDate == "2026-05-01"
		})).Return(&tradeapp.PurchaseResponse{
			ID:            uuid.New(),
			TotalAmount:   decimal.RequireFromString("45"),
			DueBillAmount: decimal.RequireFromString("25"),
			PurchaseDate:  "2026-05-01",
		}, nil)

		w := performRequest(setupPurchaseRouter(svc), http.MethodPost, "/purchases",
			strings.NewReader(purchaseBody(productID, supplierID, "4.50", "20", "2026-05-01")), nil)

		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var got tradeapp.PurchaseResponse
		decodeData(t, decodeEnvelope(t, w), &got)
		assert.True(t, got.DueBillAmount.Equal(decimal.RequireFromString("25")))
		svc.AssertExpectations(t)
	})

	t.Run("bad date", func(t *testing.T) {
		svc := new(MockPurchaseService)

		w := performRequest(setupPurchaseRouter(svc), http.MethodPost, "/purchases",
			strings.NewReader(purchaseBody(productID, supplierID, "4.50", "0", "01/05/2026")), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		if assert.Len(t, env.Error.Details, 1) {
			assert.Equal(t, "purchase_date", env.Error.Details[0].Field)
		}
	})

	t.Run("payment over total", func(t *testing.T) {
		svc := new(MockPurchaseService)
		svc.On("RecordPurchase", mock.Anything, mock.Anything).
			Return(nil, shared.NewDomainError("PAYMENT_EXCEEDS_TOTAL", "Payment exceeds the purchase total"))

		w := performRequest(setupPurchaseRouter(svc), http.MethodPost, "/purchases",
			strings.NewReader(purchaseBody(productID, supplierID, "4.50", "100", "2026-05-01")), nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, dto.ErrCodePaymentExceedsTotal, decodeEnvelope(t, w).Error.Code)
	})
}

func TestPurchaseHandler_List(t *testing.T) {
	t.Run("filters by supplier", func(t *testing.T) {
		svc := new(MockPurchaseService)
		supplierID := uuid.New()
		svc.On("List", mock.Anything, mock.MatchedBy(func(f tradeapp.PurchaseListFilter) bool {
			return f.SupplierID != nil && *f.SupplierID == supplierID && f.ProductID == nil
		})).Return([]trade.PurchaseView{}, int64(0), nil)

		w := performRequest(setupPurchaseRouter(svc), http.MethodGet, "/purchases?supplier_id="+supplierID.String(), nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("malformed supplier id", func(t *testing.T) {
		svc := new(MockPurchaseService)

		w := performRequest(setupPurchaseRouter(svc), http.MethodGet, "/purchases?supplier_id=acme", nil, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidInput, decodeEnvelope(t, w).Error.Code)
		svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestPurchaseHandler_FormOptionsAndProductInfo(t *testing.T) {
	svc := new(MockPurchaseService)
	productID := uuid.New()
	svc.On("FormOptions", mock.Anything).Return(&tradeapp.PurchaseFormOptions{
		Products:  []tradeapp.ProductOption{{ID: productID, Name: "Sparkling Water"}},
		Suppliers: []tradeapp.SupplierOption{{ID: uuid.New(), Name: "Acme"}},
	}, nil)
	svc.On("ProductPurchaseInfo", mock.Anything, productID).Return(&tradeapp.ProductPurchaseInfo{
		ProductID:   productID,
		BuyingPrice: decimal.RequireFromString("0.90"),
		StockAmount: 24,
	}, nil)
	router := setupPurchaseRouter(svc)

	w := performRequest(router, http.MethodGet, "/purchases/form-options", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var options tradeapp.PurchaseFormOptions
	decodeData(t, decodeEnvelope(t, w), &options)
	assert.Len(t, options.Products, 1)
	assert.Len(t, options.Suppliers, 1)

	w = performRequest(router, http.MethodGet, "/purchases/products/"+productID.String(), nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var info tradeapp.ProductPurchaseInfo
	decodeData(t, decodeEnvelope(t, w), &info)
	assert.Equal(t, 24, info.StockAmount)
	svc.AssertExpectations(t)
}
