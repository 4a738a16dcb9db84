// Package service exposes one bill-splitting session over a JSON HTTP API.
//
// The session itself is single-threaded; the service serializes every
// request with a mutex so the core never sees concurrent access.
package service

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/korkiat/splitbill/internal/calculator"
	"github.com/korkiat/splitbill/internal/models"
	"github.com/korkiat/splitbill/internal/report"
	"github.com/korkiat/splitbill/internal/session"
	"github.com/korkiat/splitbill/internal/storage"
)

// SessionService drives a single session in response to user actions.
type SessionService struct {
	mu      sync.Mutex
	session *session.Session
	store   storage.Store
	writer  *report.Writer
}

// New creates a SessionService with a fresh session.
func New(store storage.Store, writer *report.Writer) *SessionService {
	return &SessionService{
		session: session.New(),
		store:   store,
		writer:  writer,
	}
}

// Register mounts all session routes under /api.
func (s *SessionService) Register(r gin.IRouter) {
	api := r.Group("/api")

	api.POST("/dishes", s.addDish)
	api.DELETE("/dishes/:name", s.removeDish)
	api.POST("/people", s.addPerson)
	api.DELETE("/people/:name", s.removePerson)

	api.GET("/state", s.state)
	api.POST("/assign/toggle", s.toggleSelection)
	api.POST("/assign/next", s.advance)
	api.POST("/assign/back", s.back)

	api.GET("/results", s.results)
	api.POST("/save", s.save)
	api.GET("/receipts", s.listReceipts)
	api.GET("/receipts/:id", s.getReceipt)

	api.POST("/reset", s.reset)
}

type dishRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type personRequest struct {
	Name string `json:"name"`
}

type toggleRequest struct {
	Dish string `json:"dish"`
}

type dishView struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Eaters      []string `json:"eaters"`
	SharedPrice float64  `json:"shared_price"`
}

type personView struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

func dishViews(dishes []*models.Dish) []dishView {
	views := make([]dishView, len(dishes))
	for i, d := range dishes {
		eaters := d.Eaters()
		if eaters == nil {
			eaters = []string{}
		}
		views[i] = dishView{
			Name:        d.Name,
			Price:       d.Price,
			Eaters:      eaters,
			SharedPrice: d.SharedPrice(),
		}
	}
	return views
}

func personViews(people []*models.Person) []personView {
	views := make([]personView, len(people))
	for i, p := range people {
		views[i] = personView{Name: p.Name, Amount: p.Total}
	}
	return views
}

// addDish handles POST /api/dishes.
func (s *SessionService) addDish(c *gin.Context) {
	var req dishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dish, err := s.session.AddDish(req.Name, req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dishView{
		Name:   dish.Name,
		Price:  dish.Price,
		Eaters: []string{},
	})
}

// removeDish handles DELETE /api/dishes/:name.
func (s *SessionService) removeDish(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.RemoveDish(c.Param("name")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// addPerson handles POST /api/people.
func (s *SessionService) addPerson(c *gin.Context) {
	var req personRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	person, err := s.session.AddPerson(req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, personView{Name: person.Name})
}

// removePerson handles DELETE /api/people/:name. Removing a person also
// purges them from every dish's eater list.
func (s *SessionService) removePerson(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.RemovePerson(c.Param("name")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// state handles GET /api/state: the full session view for display.
func (s *SessionService) state(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := gin.H{
		"dishes":        dishViews(s.session.Dishes()),
		"people":        personViews(s.session.People()),
		"selected":      s.selectedOrEmpty(),
		"current_index": s.session.CurrentIndex(),
		"is_last":       s.session.IsLastPerson(),
		"done":          s.session.Done(),
	}
	if current := s.session.CurrentPerson(); current != nil {
		resp["current_person"] = current.Name
	}
	c.JSON(http.StatusOK, resp)
}

func (s *SessionService) selectedOrEmpty() []string {
	if sel := s.session.Selected(); sel != nil {
		return sel
	}
	return []string{}
}

// toggleSelection handles POST /api/assign/toggle. Unknown dishes are a
// no-op, matching the tolerant behavior of the session.
func (s *SessionService) toggleSelection(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.ToggleSelection(req.Dish)
	c.JSON(http.StatusOK, gin.H{"selected": s.selectedOrEmpty()})
}

// advance handles POST /api/assign/next: commits the current selection and
// moves to the next person. Safe to call again after the walk is done.
func (s *SessionService) advance(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.CommitAndAdvance()
	c.JSON(http.StatusOK, gin.H{
		"current_index": s.session.CurrentIndex(),
		"done":          s.session.Done(),
	})
}

// back handles POST /api/assign/back: revisits the previous person. Eater
// assignments already committed for that person are not retracted.
func (s *SessionService) back(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Back()
	c.JSON(http.StatusOK, gin.H{
		"current_index": s.session.CurrentIndex(),
		"done":          s.session.Done(),
	})
}

// results handles GET /api/results: recomputes every total, projects the
// summary, and reports the validation verdict alongside it.
func (s *SessionService) results(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dishes := s.session.Dishes()
	people := s.session.People()

	calculator.CalculateBills(dishes, people)
	amounts, grandTotal := report.Summary(dishes, people)

	valid := true
	reason := ""
	if err := calculator.Validate(dishes, people); err != nil {
		valid = false
		reason = err.Error()

		var mismatch *calculator.TotalMismatchError
		if errors.As(err, &mismatch) {
			// A mismatch means the computation itself is inconsistent,
			// not that the user entered bad data.
			slog.Error("Bill reconciliation failed",
				"expected", mismatch.Expected,
				"actual", mismatch.Actual,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": reason})
			return
		}
	}

	totals := make([]personView, len(amounts))
	formatted := make([]string, len(amounts))
	for i, a := range amounts {
		totals[i] = personView{Name: a.Name, Amount: a.Amount}
		formatted[i] = report.FormatPersonLine(a.Name, a.Amount)
	}

	c.JSON(http.StatusOK, gin.H{
		"totals":      totals,
		"lines":       formatted,
		"grand_total": grandTotal,
		"valid":       valid,
		"reason":      reason,
	})
}

// save handles POST /api/save: recomputes totals, writes the timestamped
// bill file, and archives a receipt snapshot.
func (s *SessionService) save(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.HasDishes() {
		c.JSON(http.StatusBadRequest, gin.H{"error": calculator.ErrNoDishes.Error()})
		return
	}
	if !s.session.HasPeople() {
		c.JSON(http.StatusBadRequest, gin.H{"error": calculator.ErrNoPeople.Error()})
		return
	}

	dishes := s.session.Dishes()
	people := s.session.People()
	calculator.CalculateBills(dishes, people)

	path, err := s.writer.Write(dishes, people)
	if err != nil {
		slog.Error("Failed to write bill file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save bill file"})
		return
	}

	receipt := buildReceipt(dishes, people)
	if err := s.store.SaveReceipt(c.Request.Context(), receipt); err != nil {
		slog.Error("Failed to archive receipt", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to archive receipt"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"file":       path,
		"receipt_id": receipt.ID,
	})
}

// buildReceipt snapshots the current session into an archivable receipt.
func buildReceipt(dishes []*models.Dish, people []*models.Person) *models.Receipt {
	receipt := &models.Receipt{
		CreatedAt:  time.Now().Unix(),
		GrandTotal: calculator.TotalBill(dishes),
	}
	for _, dish := range dishes {
		receipt.Dishes = append(receipt.Dishes, models.ReceiptDish{
			Name:   dish.Name,
			Price:  dish.Price,
			Eaters: append([]string(nil), dish.Eaters()...),
		})
	}
	for _, person := range people {
		receipt.Totals = append(receipt.Totals, models.PersonTotal{
			Name:   person.Name,
			Amount: person.Total,
		})
	}
	return receipt
}

// listReceipts handles GET /api/receipts.
func (s *SessionService) listReceipts(c *gin.Context) {
	receipts, err := s.store.ListReceipts(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list receipts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list receipts"})
		return
	}
	if receipts == nil {
		receipts = []*models.Receipt{}
	}
	c.JSON(http.StatusOK, gin.H{"receipts": receipts})
}

// getReceipt handles GET /api/receipts/:id.
func (s *SessionService) getReceipt(c *gin.Context) {
	receipt, err := s.store.GetReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "receipt not found"})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// reset handles POST /api/reset: discards all session state. This is the
// explicit start-over operation; the service never rebuilds itself.
func (s *SessionService) reset(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Reset()
	c.Status(http.StatusNoContent)
}
