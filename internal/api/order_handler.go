package api

import (
	"net/http"

	"shopora-be/internal/middleware"
	"shopora-be/internal/order"
	"shopora-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

type createOrderRequest struct {
	CartItems   []orderItemRequest `json:"cartItems" binding:"required"`
	AddressInfo struct {
		AddressID string `json:"addressId"`
		Address   string `json:"address"`
		City      string `json:"city"`
		Pincode   string `json:"pincode"`
		Phone     string `json:"phone"`
		Notes     string `json:"notes"`
	} `json:"addressInfo"`
	PaymentMethod string `json:"paymentMethod"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	items := make([]order.Item, 0, len(req.CartItems))
	for _, it := range req.CartItems {
		productID, err := uuid.Parse(it.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid product id"})
			return
		}
		items = append(items, order.Item{
			ProductID: productID,
			Title:     it.Title,
			Image:     it.Image,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	// Address id is optional in the snapshot; a blank value is stored as
	// the zero uuid.
	addressID, _ := uuid.Parse(req.AddressInfo.AddressID)

	claims := middleware.ClaimsFrom(c)
	input := order.CreateOrderInput{
		UserID: claims.UserID,
		Items:  items,
		AddressInfo: order.AddressInfo{
			AddressID: addressID,
			Address:   req.AddressInfo.Address,
			City:      req.AddressInfo.City,
			Pincode:   req.AddressInfo.Pincode,
			Phone:     req.AddressInfo.Phone,
			Notes:     req.AddressInfo.Notes,
		},
		PaymentMethod: req.PaymentMethod,
	}

	res, err := h.orders.CreateOrder(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"approvalURL": res.ApprovalURL,
		"orderId":     res.OrderID,
	})
}

type captureRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
	PayerID   string `json:"payerId" binding:"required"`
	OrderID   string `json:"orderId" binding:"required"`
}

func (h *OrderHandler) Capture(c *gin.Context) {
	var req captureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid order id"})
		return
	}

	o, err := h.orders.CapturePayment(c.Request.Context(), orderID, req.PaymentID, req.PayerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order confirmed",
		"data":    o,
	})
}

func (h *OrderHandler) ListByUser(c *gin.Context) {
	userID, ok := ownedUserID(c)
	if !ok {
		return
	}

	orders, err := h.orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, orders)
}

func (h *OrderHandler) Details(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid order id"})
		return
	}

	o, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	claims := middleware.ClaimsFrom(c)
	if o.UserID != claims.UserID && claims.Role != string(user.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied"})
		return
	}

	respondData(c, http.StatusOK, o)
}

// ----------------- Admin -----------------

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, orders)
}

func (h *OrderHandler) AdminDetails(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid order id"})
		return
	}

	o, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, o)
}

type updateStatusRequest struct {
	OrderStatus string `json:"orderStatus" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid order id"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	if err := h.orders.UpdateStatus(c.Request.Context(), id, order.OrderStatus(req.OrderStatus)); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Order status updated successfully")
}
