// Package calculator derives per-person totals from the dish set and checks
// that the split reconciles with the invoice total.
package calculator

import (
	"log/slog"

	"github.com/korkiat/splitbill/internal/models"
)

// Tolerance is the absolute slack allowed when reconciling the sum of
// per-person totals against the invoice total, to absorb floating-point
// accumulation error.
const Tolerance = 0.01

// CalculateBills recomputes every person's total from scratch: each total is
// reset to zero, then every dish adds its shared price to each of its eaters.
// An eater name with no matching person is skipped with a warning rather than
// failing the whole calculation; Validate catches the resulting mismatch.
// Calling this twice in a row yields the same totals.
func CalculateBills(dishes []*models.Dish, people []*models.Person) {
	byName := make(map[string]*models.Person, len(people))
	for _, p := range people {
		p.ResetTotal()
		byName[p.Name] = p
	}

	for _, dish := range dishes {
		shared := dish.SharedPrice()
		for _, eater := range dish.Eaters() {
			person, ok := byName[eater]
			if !ok {
				slog.Warn("Dish has an eater with no matching person",
					"dish", dish.Name,
					"eater", eater,
				)
				continue
			}
			person.AddToTotal(shared)
		}
	}
}

// TotalBill returns the restaurant's invoice total: the sum of all dish
// prices, irrespective of who ate what.
func TotalBill(dishes []*models.Dish) float64 {
	var total float64
	for _, dish := range dishes {
		total += dish.Price
	}
	return total
}
