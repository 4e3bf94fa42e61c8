package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated account ID.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated account ID from the Gin context,
// falling back to the request context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}

	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}
