package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gymkeep/internal/shared/errors"
)

// ParseIDParam parses a numeric URL path parameter. entityName is used in
// error messages (e.g. "client", "class slot").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// PageQuery binds the standard pagination query parameters.
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ParseOptionalUintQuery parses an optional numeric query parameter and
// returns nil when it is absent.
func ParseOptionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + name + " parameter")
	}

	v := uint(value)
	return &v, nil
}
