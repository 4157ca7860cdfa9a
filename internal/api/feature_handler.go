package api

import (
	"net/http"

	"shopora-be/internal/feature"

	"github.com/gin-gonic/gin"
)

type FeatureHandler struct {
	features feature.Service
}

func NewFeatureHandler(features feature.Service) *FeatureHandler {
	return &FeatureHandler{features: features}
}

type addFeatureRequest struct {
	Image string `json:"image" binding:"required"`
}

func (h *FeatureHandler) Add(c *gin.Context) {
	var req addFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	img, err := h.features.Add(c.Request.Context(), req.Image)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, img)
}

func (h *FeatureHandler) List(c *gin.Context) {
	images, err := h.features.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, images)
}
