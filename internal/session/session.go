// Package session holds the transient in-memory state of one bill-splitting
// run: the dish and person registries and the assignment progress.
//
// A session is single-threaded by design. Every operation is a synchronous
// mutation of in-memory collections; the caller (the HTTP layer) serializes
// access.
package session

import (
	"errors"
	"strconv"
	"strings"

	"github.com/korkiat/splitbill/internal/models"
)

var (
	ErrInvalidName     = errors.New("name must not be empty")
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
	ErrDuplicateDish   = errors.New("a dish with this name already exists")
	ErrDuplicatePerson = errors.New("a person with this name already exists")
)

// Session owns the dish and person registries and tracks which person is
// currently being asked what they ate.
type Session struct {
	dishes      map[string]*models.Dish
	dishOrder   []string
	people      map[string]*models.Person
	personOrder []string

	// current indexes into personOrder during the assignment phase.
	// current == len(personOrder) means assignment is done.
	current int

	// selected is the working set of dish names picked for the current
	// person, kept in selection order.
	selected []string
}

// New creates an empty session.
func New() *Session {
	return &Session{
		dishes: make(map[string]*models.Dish),
		people: make(map[string]*models.Person),
	}
}

// AddDish validates and registers a new dish. The name is trimmed and must be
// non-empty and unique; the price string must parse as a number >= 0.
func (s *Session) AddDish(name, price string) (*models.Dish, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if _, exists := s.dishes[name]; exists {
		return nil, ErrDuplicateDish
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || amount < 0 {
		return nil, ErrInvalidPrice
	}

	dish := models.NewDish(name, amount)
	s.dishes[name] = dish
	s.dishOrder = append(s.dishOrder, name)
	return dish, nil
}

// AddPerson validates and registers a new person. The name is trimmed and
// must be non-empty and unique.
func (s *Session) AddPerson(name string) (*models.Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if _, exists := s.people[name]; exists {
		return nil, ErrDuplicatePerson
	}

	person := models.NewPerson(name)
	s.people[name] = person
	s.personOrder = append(s.personOrder, name)
	return person, nil
}

// RemoveDish deletes a dish from the registry and from the working selection.
// Reports whether the dish existed.
func (s *Session) RemoveDish(name string) bool {
	if _, exists := s.dishes[name]; !exists {
		return false
	}
	delete(s.dishes, name)
	s.dishOrder = removeString(s.dishOrder, name)
	s.selected = removeString(s.selected, name)
	return true
}

// RemovePerson deletes a person from the registry and purges them from every
// dish's eater list, so no dish keeps an orphaned reference.
// Reports whether the person existed.
func (s *Session) RemovePerson(name string) bool {
	if _, exists := s.people[name]; !exists {
		return false
	}
	delete(s.people, name)
	s.personOrder = removeString(s.personOrder, name)
	for _, dish := range s.dishes {
		dish.RemoveEater(name)
	}
	if s.current > len(s.personOrder) {
		s.current = len(s.personOrder)
	}
	return true
}

// Dishes returns all dishes in insertion order.
func (s *Session) Dishes() []*models.Dish {
	out := make([]*models.Dish, 0, len(s.dishOrder))
	for _, name := range s.dishOrder {
		out = append(out, s.dishes[name])
	}
	return out
}

// People returns all people in insertion order.
func (s *Session) People() []*models.Person {
	out := make([]*models.Person, 0, len(s.personOrder))
	for _, name := range s.personOrder {
		out = append(out, s.people[name])
	}
	return out
}

// Dish looks up a dish by name.
func (s *Session) Dish(name string) (*models.Dish, bool) {
	d, ok := s.dishes[name]
	return d, ok
}

// Person looks up a person by name.
func (s *Session) Person(name string) (*models.Person, bool) {
	p, ok := s.people[name]
	return p, ok
}

// HasDishes reports whether any dishes have been added.
func (s *Session) HasDishes() bool {
	return len(s.dishes) > 0
}

// HasPeople reports whether any people have been added.
func (s *Session) HasPeople() bool {
	return len(s.people) > 0
}

// ToggleSelection flips the membership of a dish in the working selection for
// the current person. Unknown dish names are ignored.
func (s *Session) ToggleSelection(dishName string) {
	if _, exists := s.dishes[dishName]; !exists {
		return
	}
	for _, sel := range s.selected {
		if sel == dishName {
			s.selected = removeString(s.selected, dishName)
			return
		}
	}
	s.selected = append(s.selected, dishName)
}

// Selected returns the working selection in selection order.
func (s *Session) Selected() []string {
	return s.selected
}

// CurrentPerson returns the person currently being asked what they ate, or
// nil once assignment is done.
func (s *Session) CurrentPerson() *models.Person {
	if s.current < 0 || s.current >= len(s.personOrder) {
		return nil
	}
	return s.people[s.personOrder[s.current]]
}

// CurrentIndex returns the zero-based position in the assignment walk.
func (s *Session) CurrentIndex() int {
	return s.current
}

// IsLastPerson reports whether the current person is the final one to assign.
func (s *Session) IsLastPerson() bool {
	return s.current >= len(s.personOrder)-1
}

// Done reports whether every person has been walked through assignment.
func (s *Session) Done() bool {
	return s.current >= len(s.personOrder)
}

// CommitAndAdvance records the current person as an eater of every selected
// dish, clears the selection, and moves on to the next person. Once the walk
// is done, further calls are no-ops so duplicate advance events from the
// caller are harmless.
func (s *Session) CommitAndAdvance() {
	if s.Done() {
		return
	}
	person := s.people[s.personOrder[s.current]]
	for _, dishName := range s.selected {
		if dish, exists := s.dishes[dishName]; exists {
			dish.AddEater(person.Name)
		}
	}
	s.current++
	s.selected = nil
}

// Back steps the assignment walk to the previous person (floored at the
// first) and clears the working selection. Eater assignments already
// committed for the revisited person are intentionally not retracted: they
// stay on the dishes, and advancing again merges the new selection in.
func (s *Session) Back() {
	if s.current > 0 {
		s.current--
	}
	s.selected = nil
}

// Reset discards all state, leaving the session as freshly constructed.
func (s *Session) Reset() {
	s.dishes = make(map[string]*models.Dish)
	s.dishOrder = nil
	s.people = make(map[string]*models.Person)
	s.personOrder = nil
	s.current = 0
	s.selected = nil
}

func removeString(list []string, value string) []string {
	for i, v := range list {
		if v == value {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
