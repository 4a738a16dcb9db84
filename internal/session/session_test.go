package session

import (
	"errors"
	"testing"
)

func TestAddDishValidation(t *testing.T) {
	tests := []struct {
		name     string
		dishName string
		price    string
		wantErr  error
	}{
		{name: "valid dish", dishName: "Pad Thai", price: "120.00", wantErr: nil},
		{name: "trims whitespace", dishName: "  Tom Yum  ", price: " 90 ", wantErr: nil},
		{name: "zero price is valid", dishName: "Water", price: "0", wantErr: nil},
		{name: "empty name", dishName: "   ", price: "50", wantErr: ErrInvalidName},
		{name: "negative price", dishName: "Som Tam", price: "-5", wantErr: ErrInvalidPrice},
		{name: "unparsable price", dishName: "Satay", price: "abc", wantErr: ErrInvalidPrice},
		{name: "empty price", dishName: "Satay", price: "", wantErr: ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			dish, err := s.AddDish(tt.dishName, tt.price)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddDish() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && dish == nil {
				t.Fatal("AddDish() returned nil dish without error")
			}
		})
	}
}

func TestAddDishDuplicate(t *testing.T) {
	s := New()
	if _, err := s.AddDish("Pad Thai", "120"); err != nil {
		t.Fatalf("AddDish() error = %v", err)
	}
	if _, err := s.AddDish("Pad Thai", "150"); !errors.Is(err, ErrDuplicateDish) {
		t.Errorf("AddDish() duplicate error = %v, want ErrDuplicateDish", err)
	}
	if got := len(s.Dishes()); got != 1 {
		t.Errorf("len(Dishes()) = %d, want 1", got)
	}
}

func TestAddPersonValidation(t *testing.T) {
	s := New()

	if _, err := s.AddPerson("  "); !errors.Is(err, ErrInvalidName) {
		t.Errorf("AddPerson(whitespace) error = %v, want ErrInvalidName", err)
	}

	person, err := s.AddPerson("  Alice  ")
	if err != nil {
		t.Fatalf("AddPerson() error = %v", err)
	}
	if person.Name != "Alice" {
		t.Errorf("person.Name = %q, want %q", person.Name, "Alice")
	}

	if _, err := s.AddPerson("Alice"); !errors.Is(err, ErrDuplicatePerson) {
		t.Errorf("AddPerson() duplicate error = %v, want ErrDuplicatePerson", err)
	}
}

// mustSetup builds the session from the worked example: Pad Thai 120, Tom Yum
// 90, with Alice and Bob as diners.
func mustSetup(t *testing.T) *Session {
	t.Helper()
	s := New()
	for _, d := range [][2]string{{"Pad Thai", "120.00"}, {"Tom Yum", "90.00"}} {
		if _, err := s.AddDish(d[0], d[1]); err != nil {
			t.Fatalf("AddDish(%q) error = %v", d[0], err)
		}
	}
	for _, p := range []string{"Alice", "Bob"} {
		if _, err := s.AddPerson(p); err != nil {
			t.Fatalf("AddPerson(%q) error = %v", p, err)
		}
	}
	return s
}

func TestAssignmentWalk(t *testing.T) {
	s := mustSetup(t)

	if s.Done() {
		t.Fatal("walk should not start done")
	}
	if got := s.CurrentPerson(); got == nil || got.Name != "Alice" {
		t.Fatalf("CurrentPerson() = %v, want Alice", got)
	}
	if s.IsLastPerson() {
		t.Error("Alice should not be the last person")
	}

	// Alice eats both dishes.
	s.ToggleSelection("Pad Thai")
	s.ToggleSelection("Tom Yum")
	s.CommitAndAdvance()

	if got := s.CurrentPerson(); got == nil || got.Name != "Bob" {
		t.Fatalf("CurrentPerson() = %v, want Bob", got)
	}
	if !s.IsLastPerson() {
		t.Error("Bob should be the last person")
	}
	if got := len(s.Selected()); got != 0 {
		t.Errorf("selection not cleared after commit, len = %d", got)
	}

	// Bob eats Tom Yum only.
	s.ToggleSelection("Tom Yum")
	s.CommitAndAdvance()

	if !s.Done() {
		t.Fatal("walk should be done after last person")
	}
	if got := s.CurrentPerson(); got != nil {
		t.Errorf("CurrentPerson() after done = %v, want nil", got)
	}

	padThai, _ := s.Dish("Pad Thai")
	tomYum, _ := s.Dish("Tom Yum")
	if got := len(padThai.Eaters()); got != 1 {
		t.Errorf("Pad Thai eaters = %d, want 1", got)
	}
	if got := len(tomYum.Eaters()); got != 2 {
		t.Errorf("Tom Yum eaters = %d, want 2", got)
	}
}

func TestCommitAndAdvanceWhenDoneIsNoop(t *testing.T) {
	s := mustSetup(t)
	s.CommitAndAdvance()
	s.CommitAndAdvance()

	if !s.Done() {
		t.Fatal("expected walk to be done")
	}
	idx := s.CurrentIndex()

	// Duplicate advance events from the caller must be harmless.
	s.CommitAndAdvance()
	s.CommitAndAdvance()

	if got := s.CurrentIndex(); got != idx {
		t.Errorf("CurrentIndex() = %d, want %d", got, idx)
	}
}

func TestToggleSelection(t *testing.T) {
	s := mustSetup(t)

	s.ToggleSelection("Pad Thai")
	if got := s.Selected(); len(got) != 1 || got[0] != "Pad Thai" {
		t.Fatalf("Selected() = %v, want [Pad Thai]", got)
	}

	// Toggling again deselects.
	s.ToggleSelection("Pad Thai")
	if got := len(s.Selected()); got != 0 {
		t.Errorf("Selected() after re-toggle = %d items, want 0", got)
	}

	// Unknown dishes are ignored.
	s.ToggleSelection("Green Curry")
	if got := len(s.Selected()); got != 0 {
		t.Errorf("Selected() after unknown toggle = %d items, want 0", got)
	}
}

// TestBackKeepsCommittedEaters pins down the product's navigation behavior:
// going back clears the working selection but does not retract assignments
// already committed for the revisited person. Advancing again merges the new
// selection into what was already recorded.
func TestBackKeepsCommittedEaters(t *testing.T) {
	s := mustSetup(t)

	s.ToggleSelection("Pad Thai")
	s.CommitAndAdvance()

	s.Back()
	if got := s.CurrentPerson(); got == nil || got.Name != "Alice" {
		t.Fatalf("CurrentPerson() after Back = %v, want Alice", got)
	}
	if got := len(s.Selected()); got != 0 {
		t.Errorf("selection should be cleared on Back, len = %d", got)
	}

	padThai, _ := s.Dish("Pad Thai")
	if !padThai.HasEater("Alice") {
		t.Error("committed assignment was retracted by Back")
	}

	// Re-answering with a different dish adds to, not replaces, the record.
	s.ToggleSelection("Tom Yum")
	s.CommitAndAdvance()

	if !padThai.HasEater("Alice") {
		t.Error("Pad Thai lost Alice after re-commit")
	}
	tomYum, _ := s.Dish("Tom Yum")
	if !tomYum.HasEater("Alice") {
		t.Error("Tom Yum did not gain Alice after re-commit")
	}
}

func TestBackFloorsAtZero(t *testing.T) {
	s := mustSetup(t)
	s.Back()
	s.Back()
	if got := s.CurrentIndex(); got != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", got)
	}
}

func TestRemovePersonPurgesEaters(t *testing.T) {
	s := mustSetup(t)
	s.ToggleSelection("Pad Thai")
	s.ToggleSelection("Tom Yum")
	s.CommitAndAdvance()

	if !s.RemovePerson("Alice") {
		t.Fatal("RemovePerson(Alice) = false, want true")
	}

	for _, dish := range s.Dishes() {
		if dish.HasEater("Alice") {
			t.Errorf("dish %q still references removed person", dish.Name)
		}
	}
	if _, ok := s.Person("Alice"); ok {
		t.Error("Alice still present in registry")
	}
	if s.RemovePerson("Alice") {
		t.Error("RemovePerson on missing person = true, want false")
	}
}

func TestRemoveDishPurgesSelection(t *testing.T) {
	s := mustSetup(t)
	s.ToggleSelection("Pad Thai")

	if !s.RemoveDish("Pad Thai") {
		t.Fatal("RemoveDish(Pad Thai) = false, want true")
	}
	if got := len(s.Selected()); got != 0 {
		t.Errorf("selection still holds removed dish, len = %d", got)
	}
	if got := len(s.Dishes()); got != 1 {
		t.Errorf("len(Dishes()) = %d, want 1", got)
	}
	if s.RemoveDish("Pad Thai") {
		t.Error("RemoveDish on missing dish = true, want false")
	}
}

func TestReset(t *testing.T) {
	s := mustSetup(t)
	s.ToggleSelection("Pad Thai")
	s.CommitAndAdvance()

	s.Reset()

	if s.HasDishes() || s.HasPeople() {
		t.Error("Reset left dishes or people behind")
	}
	if got := s.CurrentIndex(); got != 0 {
		t.Errorf("CurrentIndex() after Reset = %d, want 0", got)
	}
	if got := len(s.Selected()); got != 0 {
		t.Errorf("Selected() after Reset = %d items, want 0", got)
	}

	// A reset session accepts the same names again.
	if _, err := s.AddDish("Pad Thai", "120"); err != nil {
		t.Errorf("AddDish after Reset error = %v", err)
	}
	if _, err := s.AddPerson("Alice"); err != nil {
		t.Errorf("AddPerson after Reset error = %v", err)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := New()
	names := []string{"Charlie", "Alice", "Bob"}
	for _, n := range names {
		if _, err := s.AddPerson(n); err != nil {
			t.Fatalf("AddPerson(%q) error = %v", n, err)
		}
	}
	for i, p := range s.People() {
		if p.Name != names[i] {
			t.Errorf("People()[%d] = %q, want %q", i, p.Name, names[i])
		}
	}
}
