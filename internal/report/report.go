// Package report produces the inventory summary.
package report

import (
	"context"

	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

// Generate computes the total product count and total inventory value
// (sum of quantity*price) from the repository's aggregate query.
func Generate(ctx context.Context, r repo.ProductRepository) (repo.Summary, error) {
	return r.CountAndTotalValue(ctx)
}
