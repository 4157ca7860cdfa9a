package api

import (
	"net/http"
	"strings"

	"shopora-be/internal/product"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	products product.Service
}

func NewProductHandler(products product.Service) *ProductHandler {
	return &ProductHandler{products: products}
}

// List serves the shop-facing catalog with optional comma-separated
// category/brand filters and a sort option.
func (h *ProductHandler) List(c *gin.Context) {
	filter := product.Filter{
		Categories: splitParam(c.Query("category")),
		Brands:     splitParam(c.Query("brand")),
	}

	sort := product.SortOption(c.DefaultQuery("sortBy", string(product.SortPriceLowToHigh)))

	items, err := h.products.List(c.Request.Context(), filter, sort)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, items)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid product id"})
		return
	}

	p, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, p)
}

func (h *ProductHandler) Search(c *gin.Context) {
	items, err := h.products.Search(c.Request.Context(), c.Param("keyword"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, items)
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
