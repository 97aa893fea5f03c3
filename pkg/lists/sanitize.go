package lists

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	cellPolicyOnce sync.Once
	cellPolicy     *bluemonday.Policy
)

// sanitizeCell strips any markup a stored value may carry and escapes the
// remainder, so a hostile record cannot break out of its table cell.
func sanitizeCell(raw string) string {
	cellPolicyOnce.Do(func() {
		cellPolicy = bluemonday.StrictPolicy()
	})
	return cellPolicy.Sanitize(raw)
}
