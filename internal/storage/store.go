// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/korkiat/splitbill/internal/models"
)

// Store defines the interface for the receipt archive.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// SaveReceipt persists a finalized bill snapshot.
	// The receipt.ID and receipt.CreatedAt fields are populated by the store
	// when unset.
	SaveReceipt(ctx context.Context, receipt *models.Receipt) error

	// GetReceipt retrieves a receipt by its ID, including the dish breakdown
	// and per-person totals. Returns an error if the receipt is not found.
	GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error)

	// ListReceipts returns all saved receipts, newest first, without their
	// dish breakdowns.
	ListReceipts(ctx context.Context) ([]*models.Receipt, error)

	// Close releases any resources held by the store.
	Close() error
}
