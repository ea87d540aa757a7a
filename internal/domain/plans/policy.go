package plans

import "strings"

// Plan identifiers and the free-tier cap (single source of truth)
const (
	PlanFree = "free"
	PlanPaid = "paid"

	// FreeProductLimit is the number of products a free account may create.
	// Deleting a product does not return the slot.
	FreeProductLimit = 2
)

// Normalize maps a stored plan value onto a known plan. Anything that is not
// explicitly paid is treated as free, so a bad row never grants extra quota.
func Normalize(plan string) string {
	if strings.ToLower(strings.TrimSpace(plan)) == PlanPaid {
		return PlanPaid
	}
	return PlanFree
}

// CanCreate reports whether an owner on the given plan may create another
// product. Paid accounts are unlimited.
func CanCreate(plan string, productCount int) bool {
	if Normalize(plan) == PlanPaid {
		return true
	}
	return productCount < FreeProductLimit
}

// NextCount returns the stored product count after a successful creation.
// The paid plan does not track counts, so it is left unchanged. Persistence
// does not call this: the products store claims the slot with a conditional
// UPDATE inside the insert transaction.
func NextCount(plan string, productCount int) int {
	if Normalize(plan) == PlanPaid {
		return productCount
	}
	return productCount + 1
}
