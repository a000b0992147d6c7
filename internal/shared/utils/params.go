package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"skylink/internal/shared/errors"
)

// ParseUintParam parses a positive numeric id from a URL path parameter.
// entityName is used in error messages (e.g., "plan", "complaint").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	return ParseID(c.Param(paramName), entityName)
}

// ParseID parses a positive numeric id given on a URL or command line.
func ParseID(raw, entityName string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID: " + raw)
	}
	return uint(n), nil
}
