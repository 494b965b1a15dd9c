package cache

import (
	"strconv"
	"strings"
)

// QueryKey identifies one cacheable catalog query. Two queries with equal
// keys are served from the same cache entry.
type QueryKey struct {
	Prefix   string
	Category string
	Name     string
	Pages    int
	OrderBy  string
}

// String converts the structured key into the final string used in Redis/map.
func (k QueryKey) String() string {
	// <PREFIX>_<CATEGORY>_<NAME>_<PAGES>_<ORDER_BY>
	return strings.Join([]string{
		k.Prefix,
		k.Category,
		k.Name,
		strconv.Itoa(k.Pages),
		k.OrderBy,
	}, "_")
}
