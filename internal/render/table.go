// Package render turns result rows into fixed-width text. It performs no I/O
// so the output can be asserted without capturing the console.
package render

import (
	"fmt"
	"strings"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

const (
	tableBorder = "+-------+---------------------------+------------+------------+"
	tableHeader = "| ID    | Name                      | Quantity   | Price      |"

	// ID left-aligned width 5, Name left width 25 (overflow allowed, never
	// truncated), Quantity right width 10, Price right width 9 with two
	// decimals and a dollar prefix.
	rowFormat = "| %-5d| %-25s| %10d| $%9.2f |\n"
)

// Table renders products as a bordered fixed-width table. An empty slice
// yields just the header block.
func Table(products []models.Product) string {
	var b strings.Builder
	b.WriteString(tableBorder + "\n")
	b.WriteString(tableHeader + "\n")
	b.WriteString(tableBorder + "\n")
	for _, p := range products {
		fmt.Fprintf(&b, rowFormat, p.ID, p.Name, p.Quantity, p.Price)
	}
	b.WriteString(tableBorder + "\n")
	return b.String()
}

// Report renders the inventory summary block.
func Report(s repo.Summary) string {
	var b strings.Builder
	b.WriteString("--- Inventory Report ---\n")
	fmt.Fprintf(&b, "Total unique products: %d\n", s.TotalItems)
	fmt.Fprintf(&b, "Total inventory value: $%.2f\n", s.TotalValue)
	b.WriteString("------------------------\n")
	return b.String()
}
