package report

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/korkiat/splitbill/internal/calculator"
	"github.com/korkiat/splitbill/internal/models"
)

func fixedClock() time.Time {
	return time.Date(2024, 11, 20, 18, 30, 5, 0, time.UTC)
}

func exampleBill() ([]*models.Dish, []*models.Person) {
	padThai := models.NewDish("Pad Thai", 120.00)
	padThai.AddEater("Alice")
	tomYum := models.NewDish("Tom Yum", 90.00)
	tomYum.AddEater("Alice")
	tomYum.AddEater("Bob")
	unassigned := models.NewDish("Mango Sticky Rice", 60.00)

	dishes := []*models.Dish{padThai, tomYum, unassigned}
	people := []*models.Person{models.NewPerson("Alice"), models.NewPerson("Bob")}
	calculator.CalculateBills(dishes, people)
	return dishes, people
}

func TestWriterFilename(t *testing.T) {
	w := NewWriter(afero.NewMemMapFs(), "bills_archive")
	w.now = fixedClock

	if got, want := w.Filename(), "bill_2024-11-20_18-30-05.txt"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestWriterWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "bills_archive")
	w.now = fixedClock

	dishes, people := exampleBill()
	path, err := w.Write(dishes, people)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	content := string(data)

	wantLines := []string{
		strings.Repeat("=", 50),
		"BILL SUMMARY",
		"Generated: 2024-11-20 18:30:05",
		"INDIVIDUAL AMOUNTS:",
		"Alice................................... THB   165.00",
		"Bob..................................... THB    45.00",
		"TOTAL BILL.............................. THB   270.00",
		"DISH BREAKDOWN:",
		"Pad Thai - THB 120.00",
		"  Shared by: Alice",
		"  Per person: THB 120.00",
		"Tom Yum - THB 90.00",
		"  Shared by: Alice, Bob",
		"  Per person: THB 45.00",
		"Mango Sticky Rice - THB 60.00",
		"  Not assigned to anyone",
	}
	for _, line := range wantLines {
		if !strings.Contains(content, line+"\n") {
			t.Errorf("written file missing line %q\ncontent:\n%s", line, content)
		}
	}
}

func TestWriterReportsIOFailure(t *testing.T) {
	// A read-only filesystem must surface an error, not panic.
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	w := NewWriter(fs, "bills_archive")
	w.now = fixedClock

	dishes, people := exampleBill()
	if _, err := w.Write(dishes, people); err == nil {
		t.Fatal("Write() on read-only fs = nil error, want failure")
	}
}
