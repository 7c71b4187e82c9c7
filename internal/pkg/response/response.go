package response

import "github.com/gin-gonic/gin"

// JSON writes a payload as-is.
func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// Message writes the flat `{"message": ...}` body the client scripts expect.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Error is an alias for Message used on failure paths for readability at
// call sites.
func Error(c *gin.Context, statusCode int, message string) {
	Message(c, statusCode, message)
}
