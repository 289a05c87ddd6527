package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogapp "github.com/shopledger/backend/internal/application/catalog"
	"github.com/shopledger/backend/internal/interfaces/http/dto"
)

// ProductService is the catalog use-case surface the product endpoints need
type ProductService interface {
	Create(ctx context.Context, req catalogapp.ProductRequest, image *catalogapp.ImageUpload) (*catalogapp.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*catalogapp.ProductResponse, error)
	List(ctx context.Context, filter catalogapp.ProductListFilter) ([]catalogapp.ProductResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req catalogapp.ProductRequest, image *catalogapp.ImageUpload) (*catalogapp.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddStock(ctx context.Context, id uuid.UUID, req catalogapp.AddStockRequest) (*catalogapp.ProductResponse, error)
	ImageURL(ctx context.Context, id uuid.UUID) (*catalogapp.ImageURLResponse, error)
}

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	productService ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create godoc
// @ID           createProduct
// @Summary      Create a product
// @Description  Accepts multipart/form-data with an optional image (jpeg, png or gif up to 2MB), or a JSON body without image.
// @Tags         products
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        category_id  formData string true  "Category ID" format(uuid)
// @Param        product_name formData string true  "Product name"
// @Param        product_code formData string true  "Product code"
// @Param        description  formData string false "Description"
// @Param        price        formData string false "Selling price" example(12.50)
// @Param        buying_price formData string false "Buying price" example(9.00)
// @Param        stock_amount formData int    false "Opening stock"
// @Param        status       formData string false "Status" Enums(active, inactive, discontinued)
// @Param        image        formData file   false "Product image"
// @Success      201 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	req, image, ok := h.bindProduct(c)
	if !ok {
		return
	}
	defer image.close()

	product, err := h.productService.Create(c.Request.Context(), req, image.upload)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// GetByID godoc
// @ID           getProductById
// @Summary      Get product by ID
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// List godoc
// @ID           listProducts
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        search      query string false "Search by name or code"
// @Param        category_id query string false "Category ID" format(uuid)
// @Param        status      query string false "Status" Enums(active, inactive, discontinued)
// @Param        in_stock    query bool   false "Only products with stock"
// @Param        page        query int    false "Page number" default(1)
// @Param        page_size   query int    false "Page size" default(20) maximum(100)
// @Param        sort_by     query string false "Sort field" default(created_at)
// @Param        sort_desc   query bool   false "Sort descending"
// @Success      200 {object} APIResponse[[]catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	if !h.uuidQuery(c, "category_id", &filter.CategoryID) {
		return
	}

	products, total, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	p, size := page(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, products, total, p, size)
}

// Update godoc
// @ID           updateProduct
// @Summary      Update a product
// @Description  Replaces every editable field. A new image replaces and deletes the previous one.
// @Tags         products
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        id           path     string true  "Product ID" format(uuid)
// @Param        category_id  formData string true  "Category ID" format(uuid)
// @Param        product_name formData string true  "Product name"
// @Param        product_code formData string true  "Product code"
// @Param        description  formData string false "Description"
// @Param        price        formData string false "Selling price"
// @Param        buying_price formData string false "Buying price"
// @Param        stock_amount formData int    false "Stock amount"
// @Param        status       formData string false "Status" Enums(active, inactive, discontinued)
// @Param        image        formData file   false "Product image"
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	req, image, ok := h.bindProduct(c)
	if !ok {
		return
	}
	defer image.close()

	product, err := h.productService.Update(c.Request.Context(), id, req, image.upload)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete godoc
// @ID           deleteProduct
// @Summary      Delete a product
// @Description  Deletes the product and its stored image. Products referenced by purchases cannot be deleted.
// @Tags         products
// @Param        id path string true "Product ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AddStock godoc
// @ID           addProductStock
// @Summary      Add stock to a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id      path string                      true "Product ID" format(uuid)
// @Param        request body catalogapp.AddStockRequest true "Stock to add"
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /products/{id}/stock [post]
func (h *ProductHandler) AddStock(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req catalogapp.AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.productService.AddStock(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ImageURL godoc
// @ID           getProductImageUrl
// @Summary      Get a download link for the product image
// @Description  Returns a presigned URL that expires after a short time
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.ImageURLResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /products/{id}/image-url [get]
func (h *ProductHandler) ImageURL(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	link, err := h.productService.ImageURL(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, link)
}

// formImage is an optional uploaded image and the file that backs it
type formImage struct {
	upload *catalogapp.ImageUpload
	closer func() error
}

func (f *formImage) close() {
	if f != nil && f.closer != nil {
		_ = f.closer()
	}
}

// bindProduct reads a product from a JSON body or a multipart form
func (h *ProductHandler) bindProduct(c *gin.Context) (catalogapp.ProductRequest, *formImage, bool) {
	var req catalogapp.ProductRequest
	if c.ContentType() == binding.MIMEJSON {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BindError(c, err)
			return req, nil, false
		}
		return req, &formImage{}, true
	}

	if !h.readProductForm(c, &req) {
		return req, nil, false
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		h.BindError(c, err)
		return req, nil, false
	}

	file, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return req, &formImage{}, true
	}
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Invalid image upload")
		return req, nil, false
	}
	body, err := file.Open()
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Invalid image upload")
		return req, nil, false
	}
	return req, &formImage{
		upload: &catalogapp.ImageUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Size:        file.Size,
			Body:        body,
		},
		closer: body.Close,
	}, true
}

func (h *ProductHandler) readProductForm(c *gin.Context, req *catalogapp.ProductRequest) bool {
	if raw := strings.TrimSpace(c.PostForm("category_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Invalid category_id format")
			return false
		}
		req.CategoryID = id
	}
	req.Name = strings.TrimSpace(c.PostForm("product_name"))
	req.Code = strings.TrimSpace(c.PostForm("product_code"))
	req.Description = c.PostForm("description")
	req.Status = strings.TrimSpace(c.PostForm("status"))

	for field, dst := range map[string]*decimal.Decimal{
		"price":        &req.Price,
		"buying_price": &req.BuyingPrice,
	} {
		raw := strings.TrimSpace(c.PostForm(field))
		if raw == "" {
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Invalid "+field)
			return false
		}
		*dst = value
	}

	if raw := strings.TrimSpace(c.PostForm("stock_amount")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Invalid stock_amount")
			return false
		}
		req.StockAmount = n
	}
	return true
}
