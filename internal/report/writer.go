package report

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/korkiat/splitbill/internal/calculator"
	"github.com/korkiat/splitbill/internal/models"
)

const (
	filenameLayout  = "2006-01-02_15-04-05"
	generatedLayout = "2006-01-02 15:04:05"
	lineWidth       = 50
	nameColumn      = 40
)

// Writer persists bill summaries as UTF-8 text files under an archive
// directory. The filesystem is abstracted behind afero so tests can run
// against an in-memory fs.
type Writer struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

// NewWriter creates a writer that stores bill files under dir on the given
// filesystem.
func NewWriter(fs afero.Fs, dir string) *Writer {
	return &Writer{fs: fs, dir: dir, now: time.Now}
}

// Filename generates the timestamped name for a bill file,
// bill_<YYYY-MM-DD_HH-MM-SS>.txt.
func (w *Writer) Filename() string {
	return fmt.Sprintf("bill_%s.txt", w.now().Format(filenameLayout))
}

// Write renders the bill summary and dish breakdown to a timestamped file in
// the archive directory, creating the directory if needed. It returns the
// path of the written file. I/O failures come back as errors for the caller
// to report; they never panic the application.
func (w *Writer) Write(dishes []*models.Dish, people []*models.Person) (string, error) {
	if err := w.fs.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	path := filepath.Join(w.dir, w.Filename())
	content := w.render(dishes, people)

	if err := afero.WriteFile(w.fs, path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write bill file: %w", err)
	}

	slog.Info("Bill saved", "path", path)
	return path, nil
}

// render produces the line-by-line file layout. The layout is shared with
// bill files written by prior runs, so every line here is load-bearing.
func (w *Writer) render(dishes []*models.Dish, people []*models.Person) string {
	var b strings.Builder
	double := strings.Repeat("=", lineWidth)
	single := strings.Repeat("-", lineWidth)

	b.WriteString(double + "\n")
	b.WriteString("BILL SUMMARY\n")
	b.WriteString(double + "\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", w.now().Format(generatedLayout))

	b.WriteString("INDIVIDUAL AMOUNTS:\n")
	b.WriteString(single + "\n")
	for _, person := range people {
		fmt.Fprintf(&b, "%s %s %8.2f\n", padDots(person.Name, nameColumn), currencyLabel, person.Total)
	}

	b.WriteString(single + "\n")
	fmt.Fprintf(&b, "%s %s %8.2f\n", padDots("TOTAL BILL", nameColumn), currencyLabel, calculator.TotalBill(dishes))
	b.WriteString(double + "\n\n")

	b.WriteString("DISH BREAKDOWN:\n")
	b.WriteString(single + "\n")
	for _, dish := range dishes {
		fmt.Fprintf(&b, "\n%s - %s\n", dish.Name, FormatCurrency(dish.Price))
		if eaters := dish.Eaters(); len(eaters) > 0 {
			fmt.Fprintf(&b, "  Shared by: %s\n", strings.Join(eaters, ", "))
			fmt.Fprintf(&b, "  Per person: %s\n", FormatCurrency(dish.SharedPrice()))
		} else {
			b.WriteString("  Not assigned to anyone\n")
		}
	}

	b.WriteString("\n" + double + "\n")
	return b.String()
}
