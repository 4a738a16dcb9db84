// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/korkiat/splitbill/internal/models"
	"github.com/korkiat/splitbill/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveReceipt persists a finalized bill snapshot to the database.
func (s *SQLiteStore) SaveReceipt(ctx context.Context, receipt *models.Receipt) error {
	// Generate ID and timestamp if not set
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	if receipt.CreatedAt == 0 {
		receipt.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO receipts (id, grand_total, created_at) VALUES (?, ?, ?)",
		receipt.ID, receipt.GrandTotal, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}

	for i := range receipt.Dishes {
		dish := &receipt.Dishes[i]
		dishID := uuid.New().String()

		_, err = tx.ExecContext(ctx,
			"INSERT INTO receipt_dishes (id, receipt_id, name, price, position) VALUES (?, ?, ?, ?, ?)",
			dishID, receipt.ID, dish.Name, dish.Price, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert receipt dish: %w", err)
		}

		for j, eater := range dish.Eaters {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO dish_eaters (dish_id, person, position) VALUES (?, ?, ?)",
				dishID, eater, j,
			)
			if err != nil {
				return fmt.Errorf("failed to insert dish eater: %w", err)
			}
		}
	}

	for i, total := range receipt.Totals {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO person_totals (receipt_id, person, amount, position) VALUES (?, ?, ?, ?)",
			receipt.ID, total.Name, total.Amount, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert person total: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetReceipt retrieves a receipt by ID, including dishes, eaters, and totals.
func (s *SQLiteStore) GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error) {
	receipt := &models.Receipt{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, grand_total, created_at FROM receipts WHERE id = ?",
		receiptID,
	).Scan(&receipt.ID, &receipt.GrandTotal, &receipt.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("receipt not found: %s", receiptID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	// Dishes with their eaters
	dishRows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price FROM receipt_dishes WHERE receipt_id = ? ORDER BY position",
		receiptID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt dishes: %w", err)
	}
	defer dishRows.Close()

	type dishRow struct {
		id   string
		dish models.ReceiptDish
	}
	var dishRecords []dishRow
	for dishRows.Next() {
		var rec dishRow
		if err := dishRows.Scan(&rec.id, &rec.dish.Name, &rec.dish.Price); err != nil {
			return nil, fmt.Errorf("failed to scan receipt dish: %w", err)
		}
		dishRecords = append(dishRecords, rec)
	}
	if err := dishRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipt dishes: %w", err)
	}

	for _, rec := range dishRecords {
		eaterRows, err := s.db.QueryContext(ctx,
			"SELECT person FROM dish_eaters WHERE dish_id = ? ORDER BY position",
			rec.id,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get dish eaters: %w", err)
		}

		for eaterRows.Next() {
			var person string
			if err := eaterRows.Scan(&person); err != nil {
				eaterRows.Close()
				return nil, fmt.Errorf("failed to scan dish eater: %w", err)
			}
			rec.dish.Eaters = append(rec.dish.Eaters, person)
		}
		eaterRows.Close()
		if err := eaterRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate dish eaters: %w", err)
		}

		receipt.Dishes = append(receipt.Dishes, rec.dish)
	}

	// Per-person totals
	totalRows, err := s.db.QueryContext(ctx,
		"SELECT person, amount FROM person_totals WHERE receipt_id = ? ORDER BY position",
		receiptID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get person totals: %w", err)
	}
	defer totalRows.Close()

	for totalRows.Next() {
		var total models.PersonTotal
		if err := totalRows.Scan(&total.Name, &total.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan person total: %w", err)
		}
		receipt.Totals = append(receipt.Totals, total)
	}
	if err := totalRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate person totals: %w", err)
	}

	return receipt, nil
}

// ListReceipts returns all receipts newest first, without dish breakdowns.
func (s *SQLiteStore) ListReceipts(ctx context.Context) ([]*models.Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, grand_total, created_at FROM receipts ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []*models.Receipt
	for rows.Next() {
		receipt := &models.Receipt{}
		if err := rows.Scan(&receipt.ID, &receipt.GrandTotal, &receipt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	return receipts, nil
}
