package calculator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/korkiat/splitbill/internal/models"
)

var (
	ErrNoDishes = errors.New("no dishes have been added")
	ErrNoPeople = errors.New("no people have been added")
)

// UnassignedDishesError reports dishes that nobody is recorded as eating.
type UnassignedDishesError struct {
	Dishes []string
}

func (e *UnassignedDishesError) Error() string {
	return "unassigned dishes: " + strings.Join(e.Dishes, ", ")
}

// TotalMismatchError reports a reconciliation failure: the sum of per-person
// totals drifted from the invoice total beyond the floating-point tolerance.
// This indicates a logic defect and should be surfaced loudly, not swallowed.
type TotalMismatchError struct {
	Expected float64 // invoice total
	Actual   float64 // sum of per-person totals
}

func (e *TotalMismatchError) Error() string {
	return fmt.Sprintf("total mismatch: bill=%.2f, paid=%.2f", e.Expected, e.Actual)
}

// Validate checks that the current state describes a consistent split.
// It returns nil when valid, otherwise the first failure found:
// ErrNoDishes, ErrNoPeople, *UnassignedDishesError, or *TotalMismatchError.
// Call CalculateBills first; Validate does not recompute totals.
func Validate(dishes []*models.Dish, people []*models.Person) error {
	if len(dishes) == 0 {
		return ErrNoDishes
	}
	if len(people) == 0 {
		return ErrNoPeople
	}

	var unassigned []string
	for _, dish := range dishes {
		if len(dish.Eaters()) == 0 {
			unassigned = append(unassigned, dish.Name)
		}
	}
	if len(unassigned) > 0 {
		return &UnassignedDishesError{Dishes: unassigned}
	}

	total := TotalBill(dishes)
	var paid float64
	for _, person := range people {
		paid += person.Total
	}
	if math.Abs(total-paid) > Tolerance {
		return &TotalMismatchError{Expected: total, Actual: paid}
	}

	return nil
}
