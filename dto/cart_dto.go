package dto

// ItemID arrives as a number from the storefront, but older clients send strings.
type CartItemInput struct {
	ItemID interface{} `json:"itemId"`
}
