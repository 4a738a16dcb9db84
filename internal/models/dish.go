package models

// Dish represents a dish on the bill, shared among the people who ate it.
// The price is fixed at creation; only the eater list changes afterwards.
type Dish struct {
	// Name is the dish name, unique within a session.
	Name string

	// Price is the full price of the dish.
	Price float64

	// eaters holds the names of people sharing this dish, in the order
	// they were assigned. Duplicate-free.
	eaters []string
}

// NewDish creates a dish with the given name and price.
func NewDish(name string, price float64) *Dish {
	return &Dish{Name: name, Price: price}
}

// Eaters returns the names of the people sharing this dish in assignment order.
// The returned slice must not be mutated by the caller.
func (d *Dish) Eaters() []string {
	return d.eaters
}

// HasEater reports whether the named person is already recorded as an eater.
func (d *Dish) HasEater(personName string) bool {
	for _, e := range d.eaters {
		if e == personName {
			return true
		}
	}
	return false
}

// AddEater records the named person as sharing this dish.
// Adding the same person twice has no additional effect.
func (d *Dish) AddEater(personName string) {
	if d.HasEater(personName) {
		return
	}
	d.eaters = append(d.eaters, personName)
}

// RemoveEater removes the named person from the eater list.
// No-op if the person is not an eater.
func (d *Dish) RemoveEater(personName string) {
	for i, e := range d.eaters {
		if e == personName {
			d.eaters = append(d.eaters[:i], d.eaters[i+1:]...)
			return
		}
	}
}

// SharedPrice returns the per-person cost of this dish: the price divided
// evenly among its eaters, or 0 when nobody ate it. No rounding is applied
// here; formatting for display happens in the report layer.
func (d *Dish) SharedPrice() float64 {
	if len(d.eaters) == 0 {
		return 0
	}
	return d.Price / float64(len(d.eaters))
}
