// internals/features/production/orders/model/order_status.go
package model

// Status order produksi: menunggu -> dalam_proses -> selesai
const (
	OrderStatusMenunggu    = "menunggu"
	OrderStatusDalamProses = "dalam_proses"
	OrderStatusSelesai     = "selesai"
)

var orderTransitions = map[string][]string{
	OrderStatusMenunggu:    {OrderStatusDalamProses},
	OrderStatusDalamProses: {OrderStatusSelesai},
	OrderStatusSelesai:     {},
}

func OrderStatusValid(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

func OrderCanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
