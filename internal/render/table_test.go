package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/render"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

const (
	border = "+-------+---------------------------+------------+------------+"
	header = "| ID    | Name                      | Quantity   | Price      |"
)

func TestTableEmpty(t *testing.T) {
	want := strings.Join([]string{border, header, border, border}, "\n") + "\n"
	require.Equal(t, want, render.Table(nil))
}

func TestTableRows(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Widget", Quantity: 5, Price: 9.99},
		{ID: 2, Name: "Gadget", Quantity: 10, Price: 120.5},
	}

	want := strings.Join([]string{
		border,
		header,
		border,
		"| 1    | Widget                   |          5| $     9.99 |",
		"| 2    | Gadget                   |         10| $   120.50 |",
		border,
	}, "\n") + "\n"

	require.Equal(t, want, render.Table(products))
}

func TestTableLongNameOverflows(t *testing.T) {
	name := "Industrial Grade Stainless Steel Hex Bolt"
	out := render.Table([]models.Product{{ID: 3, Name: name, Quantity: 2, Price: 1.5}})

	// Names longer than the column are never truncated.
	require.Contains(t, out, name)
}

func TestReport(t *testing.T) {
	want := "--- Inventory Report ---\n" +
		"Total unique products: 2\n" +
		"Total inventory value: $5.00\n" +
		"------------------------\n"

	require.Equal(t, want, render.Report(repo.Summary{TotalItems: 2, TotalValue: 5}))
}

func TestReportEmpty(t *testing.T) {
	out := render.Report(repo.Summary{})
	require.Contains(t, out, "Total unique products: 0")
	require.Contains(t, out, "Total inventory value: $0.00")
}
