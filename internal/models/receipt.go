package models

// Receipt is a snapshot of a finalized bill, persisted to the archive when
// the user saves the results. Unlike the live session it is immutable.
type Receipt struct {
	// ID is the unique identifier for the receipt (UUID format).
	ID string `json:"id"`

	// CreatedAt is the Unix timestamp when the receipt was saved.
	CreatedAt int64 `json:"created_at"`

	// GrandTotal is the restaurant's invoice total: the sum of all dish
	// prices, independent of how the bill was split.
	GrandTotal float64 `json:"grand_total"`

	// Dishes is the per-dish breakdown at the moment of saving.
	Dishes []ReceiptDish `json:"dishes,omitempty"`

	// Totals is each person's computed share.
	Totals []PersonTotal `json:"totals,omitempty"`
}

// ReceiptDish is one dish line on a saved receipt.
type ReceiptDish struct {
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Eaters []string `json:"eaters,omitempty"`
}

// PersonTotal is one person's share on a saved receipt.
type PersonTotal struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}
