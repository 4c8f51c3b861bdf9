package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCartData(t *testing.T) {
	cart := NewCartData()

	assert.Len(t, cart, CartSlots)
	for i := 0; i < CartSlots; i++ {
		assert.Equal(t, 0, cart[i])
	}
}

func TestCartDataIncrement(t *testing.T) {
	cart := NewCartData()

	assert.True(t, cart.Increment(5))
	assert.True(t, cart.Increment(5))
	assert.Equal(t, 2, cart[5])

	assert.False(t, cart.Increment(CartSlots))
	assert.Len(t, cart, CartSlots)
}

func TestCartDataDecrementFloorsAtZero(t *testing.T) {
	cart := NewCartData()
	cart[7] = 1

	assert.True(t, cart.Decrement(7))
	assert.Equal(t, 0, cart[7])

	assert.False(t, cart.Decrement(7))
	assert.Equal(t, 0, cart[7])

	assert.False(t, cart.Decrement(-1))
	assert.Len(t, cart, CartSlots)
}
