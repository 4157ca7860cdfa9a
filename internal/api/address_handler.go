package api

import (
	"net/http"

	"shopora-be/internal/address"
	"shopora-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AddressHandler struct {
	addresses address.Service
}

func NewAddressHandler(addresses address.Service) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

func (h *AddressHandler) Add(c *gin.Context) {
	var input address.CreateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	claims := middleware.ClaimsFrom(c)
	a, err := h.addresses.Create(c.Request.Context(), claims.UserID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, a)
}

func (h *AddressHandler) List(c *gin.Context) {
	userID, ok := ownedUserID(c)
	if !ok {
		return
	}

	list, err := h.addresses.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, list)
}

func (h *AddressHandler) Update(c *gin.Context) {
	userID, ok := ownedUserID(c)
	if !ok {
		return
	}

	addressID, err := uuid.Parse(c.Param("addressId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid address id"})
		return
	}

	var input address.UpdateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	a, err := h.addresses.Update(c.Request.Context(), userID, addressID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, a)
}

func (h *AddressHandler) Delete(c *gin.Context) {
	userID, ok := ownedUserID(c)
	if !ok {
		return
	}

	addressID, err := uuid.Parse(c.Param("addressId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid address id"})
		return
	}

	if err := h.addresses.Delete(c.Request.Context(), userID, addressID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Address deleted successfully")
}
