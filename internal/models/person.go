package models

// Person represents a diner participating in the bill split.
type Person struct {
	// Name is the person's name, unique within a session.
	Name string

	// Total is the accumulated share of this person across all dishes.
	// Derived state: reset and recomputed on every calculation pass.
	Total float64
}

// NewPerson creates a person with a zero total.
func NewPerson(name string) *Person {
	return &Person{Name: name}
}

// AddToTotal adds an amount to this person's running total.
func (p *Person) AddToTotal(amount float64) {
	p.Total += amount
}

// ResetTotal zeroes the running total before a recalculation.
func (p *Person) ResetTotal() {
	p.Total = 0
}
