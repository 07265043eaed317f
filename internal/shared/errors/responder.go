package errors

import "github.com/gin-gonic/gin"

// Respond writes an ErrorResponse with the given HTTP status.
func Respond(c *gin.Context, status int, response ErrorResponse) {
	c.JSON(status, response)
}

// RespondMessage writes a plain error body with the given HTTP status.
func RespondMessage(c *gin.Context, status int, message string) {
	Respond(c, status, New(message))
}
