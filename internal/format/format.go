package format

import (
	"fmt"
	"math"
)

// Money renders an item price for display. A missing or zero price means the
// maker quotes on request.
// Example: Money(42.7) => "$43", Money(0) => "Quote"
func Money(price float64) string {
	if price <= 0 {
		return "Quote"
	}
	return fmt.Sprintf("$%d", int64(math.Round(price)))
}

// Days renders a lead time pill label.
func Days(n int) string {
	return fmt.Sprintf("%d day(s)", n)
}
