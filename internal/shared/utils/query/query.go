// Package query parses the shared list-endpoint query parameters.
package query

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Paging carries the standard list parameters: index (offset), count
// (page size), order (sort field) and direction (1 ascending, -1
// descending).
type Paging struct {
	Index     int64
	Count     int64
	Order     string
	Direction int
}

// ParsePaging reads index, count, order and direction from the query
// string. Malformed numbers fall back to zero values; the repository
// applies its own defaults.
func ParsePaging(c *gin.Context) Paging {
	p := Paging{
		Order: c.Query("order"),
	}
	if v, err := strconv.ParseInt(c.Query("index"), 10, 64); err == nil {
		p.Index = v
	}
	if v, err := strconv.ParseInt(c.Query("count"), 10, 64); err == nil {
		p.Count = v
	}
	if c.Query("direction") == "desc" || c.Query("direction") == "-1" {
		p.Direction = -1
	}
	return p
}

// SetTotalCount exposes the unpaged result size to clients.
func SetTotalCount(c *gin.Context, total int64) {
	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
}
