// pkg/storeclient/selectors.go
package storeclient

import "time"

// Read-only selectors over container snapshots, used by the back-office
// dashboard cards.

// OrdersToday counts orders created since local midnight.
func OrdersToday(orders []Order, now time.Time) int {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	count := 0
	for _, o := range orders {
		if !o.CreatedAt.Before(start) {
			count++
		}
	}
	return count
}

func PendingOrders(orders []Order) int {
	count := 0
	for _, o := range orders {
		if o.Status == "Pending" {
			count++
		}
	}
	return count
}

func Revenue(orders []Order) float64 {
	total := 0.0
	for _, o := range orders {
		if o.Status != "Cancelled" {
			total += o.Total
		}
	}
	return total
}
