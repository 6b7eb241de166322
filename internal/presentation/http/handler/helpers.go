package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/salgaderia-api/internal/presentation/http/middleware"
)

// GetOperatorID extracts the operator ID from the Gin context
func GetOperatorID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get(middleware.OperatorIDKey)
	if !exists {
		return nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

// GetOperatorName extracts the operator name from the Gin context
func GetOperatorName(c *gin.Context) string {
	return c.GetString(middleware.OperatorNameKey)
}

// parseID reads the :id path parameter
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	return id, err == nil
}

// wantsText reports whether the client asked for the raw document text
func wantsText(c *gin.Context) bool {
	if c.Query("format") == "text" {
		return true
	}
	return c.NegotiateFormat(gin.MIMEJSON, gin.MIMEPlain) == gin.MIMEPlain
}
