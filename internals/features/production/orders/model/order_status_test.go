// internals/features/production/orders/model/order_status_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderCanTransition(t *testing.T) {
	assert.True(t, OrderCanTransition(OrderStatusMenunggu, OrderStatusDalamProses))
	assert.True(t, OrderCanTransition(OrderStatusDalamProses, OrderStatusSelesai))

	assert.False(t, OrderCanTransition(OrderStatusMenunggu, OrderStatusSelesai))
	assert.False(t, OrderCanTransition(OrderStatusSelesai, OrderStatusDalamProses))
	assert.False(t, OrderCanTransition(OrderStatusSelesai, OrderStatusMenunggu))
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusValid(OrderStatusMenunggu))
	assert.True(t, OrderStatusValid(OrderStatusDalamProses))
	assert.True(t, OrderStatusValid(OrderStatusSelesai))
	assert.False(t, OrderStatusValid("ditutup"))
	assert.False(t, OrderStatusValid(""))
}
