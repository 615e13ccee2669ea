package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

// ErrProductNotFound is returned when no stored product matches the given ID.
// It is a no-op outcome, distinct from an engine failure.
var ErrProductNotFound = errors.New("product not found")

// Summary holds the aggregate figures of the inventory report.
type Summary struct {
	TotalItems int
	TotalValue float64
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, product models.Product) error
	Delete(ctx context.Context, id int) error
	SearchByName(ctx context.Context, term string) ([]models.Product, error)
	FilterByQuantity(ctx context.Context, threshold int) ([]models.Product, error)
	CountAndTotalValue(ctx context.Context) (Summary, error)
}
