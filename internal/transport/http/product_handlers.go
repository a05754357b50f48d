package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/Gunvolt24/riskgate/internal/usecase"
	"github.com/Gunvolt24/riskgate/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	SKU         string  `json:"sku"`
	Brand       string  `json:"brand"`
	Weight      float64 `json:"weight"`
	ImageURL    string  `json:"image_url"`
	Active      bool    `json:"active"`
}

type updateStockRequest struct {
	Stock *int `json:"stock"`
}

func (h *Handler) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	if req.Name == "" {
		badRequest(c, "name is required")
		return
	}
	if req.Price < 0 {
		badRequest(c, "price must be non-negative")
		return
	}
	if req.Stock < 0 {
		badRequest(c, "stock must be non-negative")
		return
	}
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    category,
		Stock:       req.Stock,
		SKU:         req.SKU,
		Brand:       req.Brand,
		Weight:      req.Weight,
		ImageURL:    req.ImageURL,
		Active:      req.Active,
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	created, err := h.products.CreateProduct(ctx, product)
	switch {
	case errors.Is(err, usecase.ErrSKUExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.log.Errorf(ctx, "CreateProduct failed name=%s err=%v", req.Name, err)
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) getProductByID(c *gin.Context) {
	id, ok := httpx.ParseUUIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid product id")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	product, err := h.products.ProductByID(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "ProductByID failed id=%s err=%v", id, err)
		internalError(c)
		return
	}
	if product == nil {
		notFound(c, "product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) listProductsByCategory(c *gin.Context) {
	raw := c.Query("category")
	if raw == "" {
		badRequest(c, "category query parameter is required")
		return
	}
	category, err := domain.ParseCategory(raw)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	products, err := h.products.ProductsByCategory(ctx, category)
	if err != nil {
		h.log.Errorf(ctx, "ProductsByCategory failed category=%s err=%v", category, err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) listActiveProducts(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	products, err := h.products.ActiveProducts(ctx)
	if err != nil {
		h.log.Errorf(ctx, "ActiveProducts failed err=%v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) updateProductStock(c *gin.Context) {
	id, ok := httpx.ParseUUIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid product id")
		return
	}

	var req updateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	if req.Stock == nil {
		badRequest(c, "stock is required")
		return
	}
	if *req.Stock < 0 {
		badRequest(c, "stock must be non-negative")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	product, err := h.products.UpdateStock(ctx, id, *req.Stock)
	if err != nil {
		h.log.Errorf(ctx, "UpdateStock failed id=%s err=%v", id, err)
		internalError(c)
		return
	}
	if product == nil {
		notFound(c, "product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, ok := httpx.ParseUUIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid product id")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	deleted, err := h.products.DeleteProduct(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "DeleteProduct failed id=%s err=%v", id, err)
		internalError(c)
		return
	}
	if !deleted {
		notFound(c, "product not found")
		return
	}
	c.Status(http.StatusNoContent)
}
