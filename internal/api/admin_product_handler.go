package api

import (
	"net/http"

	"shopora-be/internal/media"
	"shopora-be/internal/product"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadFieldName is the multipart field the admin dashboard posts.
const uploadFieldName = "my_file"

type AdminProductHandler struct {
	products product.Service
	uploader media.Uploader
}

func NewAdminProductHandler(products product.Service, uploader media.Uploader) *AdminProductHandler {
	return &AdminProductHandler{products: products, uploader: uploader}
}

func (h *AdminProductHandler) List(c *gin.Context) {
	items, err := h.products.List(c.Request.Context(), product.Filter{}, "")
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, items)
}

func (h *AdminProductHandler) Add(c *gin.Context) {
	var input product.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	p, err := h.products.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, p)
}

func (h *AdminProductHandler) Edit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid product id"})
		return
	}

	var input product.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	p, err := h.products.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, p)
}

func (h *AdminProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid product id"})
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Product deleted successfully")
}

// UploadImage pushes the posted file to the media host and returns the
// hosted URL for the dashboard to attach to a product.
func (h *AdminProductHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile(uploadFieldName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"url": url})
}
