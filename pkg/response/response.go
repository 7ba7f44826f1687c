// Package response writes the service's JSON envelopes. Errors always
// render as {"error": "<message>"} and informational results as
// {"message": "<message>"}; user payloads are serialized by the handlers.
package response

import "github.com/gin-gonic/gin"

func Err(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
