package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/rogerio-castellano/inventory-manager/internal/report"
)

func TestGenerateEmpty(t *testing.T) {
	r := repo.NewInMemoryProductRepository()

	summary, err := report.Generate(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, repo.Summary{TotalItems: 0, TotalValue: 0}, summary)
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	r := repo.NewInMemoryProductRepository()

	_, err := r.Create(ctx, models.Product{Name: "A", Quantity: 1, Price: 1.00})
	require.NoError(t, err)
	_, err = r.Create(ctx, models.Product{Name: "B", Quantity: 2, Price: 2.00})
	require.NoError(t, err)

	summary, err := report.Generate(ctx, r)
	require.NoError(t, err)
	require.Equal(t, 2, summary.TotalItems)
	require.InDelta(t, 5.00, summary.TotalValue, 0.01)
}
