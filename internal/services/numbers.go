package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Unique reference number generators. Formats follow the customer-facing
// conventions: guide numbers are DSE + date + timestamp + random suffix,
// quotation/order numbers are dash-separated with a short suffix.

func NewTrackingNumber(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	return fmt.Sprintf("DSE%s%s%s", now.Format("060102"), lastN(ms, 6), randomSuffix(4))
}

func NewQuotationNumber(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	return fmt.Sprintf("COT-%s-%s", lastN(ms, 8), randomSuffix(3))
}

func NewOrderNumber(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	return fmt.Sprintf("ORD-%s-%s", lastN(ms, 8), randomSuffix(3))
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// randomSuffix returns n uppercase hex characters sourced from a random
// UUID. Uniqueness is ultimately enforced by the store's unique indexes;
// the suffix only disambiguates same-millisecond requests.
func randomSuffix(n int) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(id) {
		n = len(id)
	}
	return strings.ToUpper(id[:n])
}
