package api

import (
	"net/http"
	"strconv"

	"shopora-be/internal/middleware"
	"shopora-be/internal/user"

	"github.com/gin-gonic/gin"
)

// ownedUserID parses the :userId path param and verifies the caller may
// act on that user's data. Admins may act on anyone. Returns false after
// writing the response when the check fails.
func ownedUserID(c *gin.Context) (uint, bool) {
	raw, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid user id"})
		return 0, false
	}
	userID := uint(raw)

	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorised user!"})
		return 0, false
	}
	if claims.UserID != userID && claims.Role != string(user.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied"})
		return 0, false
	}

	return userID, true
}
