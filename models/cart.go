package models

// CartSlots is the number of product slots every cart is created with.
const CartSlots = 300

// CartData maps a product slot index to the quantity in the cart.
// The key set is fixed at signup; only the values change afterwards.
type CartData map[int]int

func NewCartData() CartData {
	cart := make(CartData, CartSlots)
	for i := 0; i < CartSlots; i++ {
		cart[i] = 0
	}
	return cart
}

// Increment adds one to the slot. It returns false if the slot does not exist.
func (c CartData) Increment(slot int) bool {
	if _, ok := c[slot]; !ok {
		return false
	}
	c[slot]++
	return true
}

// Decrement removes one from the slot, never going below zero.
func (c CartData) Decrement(slot int) bool {
	qty, ok := c[slot]
	if !ok || qty <= 0 {
		return false
	}
	c[slot] = qty - 1
	return true
}
