package analytics

import (
	"strconv"
	"strings"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
)

// CoercePrice turns a loosely typed price value from the document store
// into a float64. Scraped documents carry prices as doubles, ints or
// strings depending on the source; anything else reports ok=false.
func CoercePrice(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// AveragePrice returns the arithmetic mean over the store entries whose
// price could be read. Entries with an unreadable price contribute to
// neither the sum nor the count; a product with no contributing entries
// averages to exactly 0.
func AveragePrice(entries map[string]domain.PriceEntry) float64 {
	var total float64
	count := 0
	for _, entry := range entries {
		if !entry.Known {
			continue
		}
		total += entry.Price
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
