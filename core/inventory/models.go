package inventory

type Item struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Quantity int    `json:"quantity" db:"quantity"`
}

type SetQuantity struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type Adjustment struct {
	Delta int `json:"delta" validate:"required"`
}

// clamp keeps quantities from going below zero.
func clamp(qty int) int {
	if qty < 0 {
		return 0
	}
	return qty
}
