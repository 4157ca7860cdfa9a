package api

import (
	"net/http"

	"shopora-be/internal/cart"
	"shopora-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	carts cart.Service
}

func NewCartHandler(carts cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

type cartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

func (h *CartHandler) Add(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid product id"})
		return
	}

	claims := middleware.ClaimsFrom(c)
	item, err := h.carts.Add(c.Request.Context(), claims.UserID, productID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, item)
}

func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := ownedUserID(c)
	if !ok {
		return
	}

	lines, err := h.carts.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"items": lines})
}

func (h *CartHandler) Update(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid product id"})
		return
	}

	claims := middleware.ClaimsFrom(c)
	if err := h.carts.UpdateQuantity(c.Request.Context(), claims.UserID, productID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Cart updated successfully")
}

func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := ownedUserID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid product id"})
		return
	}

	if err := h.carts.Remove(c.Request.Context(), userID, productID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Cart item removed successfully")
}
