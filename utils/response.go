package utils

import "github.com/gin-gonic/gin"

// JSONError writes {"error": message}.
func JSONError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}

// JSONMessage writes {"message": message}.
func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
