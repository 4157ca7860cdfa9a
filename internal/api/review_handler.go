package api

import (
	"net/http"

	"shopora-be/internal/middleware"
	"shopora-be/internal/review"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviews review.Service
}

func NewReviewHandler(reviews review.Service) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type addReviewRequest struct {
	ProductID     string `json:"productId" binding:"required"`
	ReviewMessage string `json:"reviewMessage"`
	ReviewValue   int    `json:"reviewValue" binding:"required"`
}

func (h *ReviewHandler) Add(c *gin.Context) {
	var req addReviewRequest
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
	rv, err := h.reviews.Add(c.Request.Context(), review.AddReviewInput{
		ProductID:     productID,
		UserID:        claims.UserID,
		UserName:      claims.UserName,
		ReviewMessage: req.ReviewMessage,
		ReviewValue:   req.ReviewValue,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, rv)
}

func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid product id"})
		return
	}

	reviews, err := h.reviews.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, reviews)
}
