package utils

import (
	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Skip       int  `json:"skip"`
	Take       int  `json:"take"`
	Total      int  `json:"total"`
	HasMore    bool `json:"has_more"`
	PageCount  int  `json:"page_count"`
	PageNumber int  `json:"page_number"`
}

// NewPaginationMeta describes a skip/take window over total results.
func NewPaginationMeta(skip, take, total int) *PaginationMeta {
	pageCount := 0
	if take > 0 {
		pageCount = (total + take - 1) / take
	}
	pageNumber := 0
	if take > 0 {
		pageNumber = skip/take + 1
	}
	return &PaginationMeta{
		Skip:       skip,
		Take:       take,
		Total:      total,
		HasMore:    skip+take < total,
		PageCount:  pageCount,
		PageNumber: pageNumber,
	}
}

// ClampTake bounds a caller-supplied page size to the configured maximum.
// Values <= 0 are passed through so the service can reject them explicitly.
func ClampTake(take int) int {
	if take > MaxTake {
		return MaxTake
	}
	return take
}

// GetRequestID pulls the request ID set by the middleware, if any.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
