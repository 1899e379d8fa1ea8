package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the numeric :id segment. A value that is not an integer can
// never match a record, so callers treat !ok as a lookup miss.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// queryLimit parses the optional limit parameter. Unparsable or negative
// values are treated as absent rather than slicing to nothing.
func queryLimit(c *gin.Context) *int {
	s := c.Query("limit")
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// queryPrice parses an optional price bound. An unparsable value is an
// absent bound, never a filter that excludes every row.
func queryPrice(c *gin.Context, name string) *float64 {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
