package api

import (
	"net/http"

	"shopora-be/internal/auth"
	"shopora-be/internal/middleware"
	"shopora-be/internal/user"

	"github.com/gin-gonic/gin"
)

const cookieMaxAge = 24 * 60 * 60

type AuthHandler struct {
	users  user.Service
	secure bool
}

func NewAuthHandler(users user.Service, secure bool) *AuthHandler {
	return &AuthHandler{users: users, secure: secure}
}

type registerRequest struct {
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	u, err := h.users.Register(c.Request.Context(), req.UserName, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"data":    u,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input"})
		return
	}

	token, u, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(auth.CookieName, token, cookieMaxAge, "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged in successfully",
		"user": gin.H{
			"id":       u.ID,
			"userName": u.UserName,
			"email":    u.Email,
			"role":     u.Role,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.secure, true)
	respondMessage(c, http.StatusOK, "Logged out successfully!")
}

// CheckAuth echoes the verified session back to the client. The session
// claims are the source of truth here, not a fresh DB read.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Authenticated user!",
		"user": gin.H{
			"id":       claims.UserID,
			"userName": claims.UserName,
			"email":    claims.Email,
			"role":     claims.Role,
		},
	})
}
