// Package report turns computed totals into textual summaries and persists
// them as timestamped bill files.
package report

import (
	"fmt"
	"strings"

	"github.com/korkiat/splitbill/internal/calculator"
	"github.com/korkiat/splitbill/internal/models"
)

// currencyLabel prefixes every formatted amount. Bill files written by prior
// runs use THB, so this stays fixed for file compatibility.
const currencyLabel = "THB"

// PersonAmount is one line of the bill summary: a person and what they owe.
type PersonAmount struct {
	Name   string
	Amount float64
}

// Summary projects the current state into per-person amounts and the grand
// total. It is a pure projection: call calculator.CalculateBills first, this
// does not recompute anything.
func Summary(dishes []*models.Dish, people []*models.Person) ([]PersonAmount, float64) {
	amounts := make([]PersonAmount, 0, len(people))
	for _, person := range people {
		amounts = append(amounts, PersonAmount{Name: person.Name, Amount: person.Total})
	}
	return amounts, calculator.TotalBill(dishes)
}

// FormatCurrency renders an amount with the currency label and two decimals,
// e.g. "THB 123.45".
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("%s %.2f", currencyLabel, amount)
}

// FormatPersonLine renders one person's summary line, e.g. "Alice: THB 165.00".
func FormatPersonLine(name string, amount float64) string {
	return fmt.Sprintf("%s: %s", name, FormatCurrency(amount))
}

// padDots left-aligns s in a field of the given width, filling with dots,
// matching the column layout of previously written bill files.
func padDots(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(".", width-len(s))
}
