package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/docflow/backend/internal/domain/shared"
)

const maxPageSize = 100

// parseFilter builds a query filter from common list query parameters
func parseFilter(c *gin.Context) shared.Filter {
	filter := shared.DefaultFilter()

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil && size > 0 {
		if size > maxPageSize {
			size = maxPageSize
		}
		filter.PageSize = size
	}
	if orderBy := c.Query("order_by"); orderBy != "" {
		filter.OrderBy = orderBy
	}
	if orderDir := c.Query("order"); orderDir != "" {
		filter.OrderDir = orderDir
	}
	filter.Search = c.Query("search")

	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	return filter
}
