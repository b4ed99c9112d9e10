// Package respond wraps every outward-facing result in the uniform
// {data, message, status_code} envelope so that API consumers only ever
// need a single parsing path, success or failure.
package respond

import "github.com/gin-gonic/gin"

// JSON writes the response envelope. data must be nil on pure failures.
// The per-request correlation ID is attached when the request ID
// middleware has run.
func JSON(c *gin.Context, code int, data any, message string) {
	h := gin.H{
		"data":        data,
		"message":     message,
		"status_code": code,
	}

	if v := c.GetString("requestID"); v != "" {
		h["requestID"] = v
	}

	c.JSON(code, h)
}

// Abort writes the envelope and aborts the handler chain. Used by
// middleware so that auth failures keep the same shape as everything else.
func Abort(c *gin.Context, code int, message string) {
	h := gin.H{
		"data":        nil,
		"message":     message,
		"status_code": code,
	}

	if v := c.GetString("requestID"); v != "" {
		h["requestID"] = v
	}

	c.AbortWithStatusJSON(code, h)
}
