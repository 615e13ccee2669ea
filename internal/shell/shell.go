// Package shell implements the interactive menu loop. It reads from an
// injected reader and writes to an injected writer so sessions can be
// scripted in tests.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/render"
	"github.com/rogerio-castellano/inventory-manager/internal/report"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

var menuTitle = color.New(color.FgCyan, color.Bold)

// Shell drives one interactive session over a single repository.
type Shell struct {
	repo   repo.ProductRepository
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger
}

func New(r repo.ProductRepository, in io.Reader, out io.Writer, logger zerolog.Logger) *Shell {
	return &Shell{
		repo:   r,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run loops on the menu until the user chooses Exit or input ends.
func (s *Shell) Run(ctx context.Context) {
	for {
		s.printMenu()
		line, ok := s.readLine()
		if !ok {
			return
		}
		choice, err := ParseChoice(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid choice. Please enter a number between 1 and 8.")
			continue
		}

		switch choice {
		case 1:
			s.addProduct(ctx)
		case 2:
			s.viewProducts(ctx)
		case 3:
			s.updateProduct(ctx)
		case 4:
			s.deleteProduct(ctx)
		case 5:
			s.searchProducts(ctx)
		case 6:
			s.filterProducts(ctx)
		case 7:
			s.generateReport(ctx)
		case 8:
			fmt.Fprintln(s.out, "Exiting program.")
			return
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	menuTitle.Fprintln(s.out, "--- Inventory Management Menu ---")
	fmt.Fprintln(s.out, "1. Add Product")
	fmt.Fprintln(s.out, "2. View All Products")
	fmt.Fprintln(s.out, "3. Update Product")
	fmt.Fprintln(s.out, "4. Delete Product")
	fmt.Fprintln(s.out, "5. Search Products by Name")
	fmt.Fprintln(s.out, "6. Filter Products by Quantity")
	fmt.Fprintln(s.out, "7. Generate Report")
	fmt.Fprintln(s.out, "8. Exit")
	fmt.Fprint(s.out, "Enter your choice: ")
}

func (s *Shell) addProduct(ctx context.Context) {
	fmt.Fprintln(s.out, "\n--- Add New Product ---")
	p, ok := s.promptProductDetails()
	if !ok {
		return
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to add product")
		fmt.Fprintln(s.out, "Failed to add product.")
		return
	}
	fmt.Fprintf(s.out, "Product '%s' added successfully.\n", created.Name)
}

func (s *Shell) viewProducts(ctx context.Context) {
	fmt.Fprintln(s.out, "\n--- Current Inventory ---")
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to retrieve products")
		fmt.Fprintln(s.out, "Failed to retrieve products.")
		return
	}
	fmt.Fprint(s.out, render.Table(products))
}

func (s *Shell) updateProduct(ctx context.Context) {
	fmt.Fprintln(s.out, "\n--- Update Product ---")
	s.viewProducts(ctx)

	id, ok := s.promptInt("Enter Product ID to update: ", ParseID,
		"Invalid input. Please enter a positive number for ID.")
	if !ok {
		return
	}
	p, ok := s.promptProductDetails()
	if !ok {
		return
	}
	p.ID = id

	err := s.repo.Update(ctx, p)
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		fmt.Fprintf(s.out, "No product found with ID %d. Update failed.\n", id)
	case err != nil:
		s.logger.Error().Err(err).Int("id", id).Msg("failed to update product")
		fmt.Fprintln(s.out, "Failed to update product.")
	default:
		fmt.Fprintln(s.out, "Product updated successfully.")
	}
}

func (s *Shell) deleteProduct(ctx context.Context) {
	fmt.Fprintln(s.out, "\n--- Delete Product ---")
	s.viewProducts(ctx)

	id, ok := s.promptInt("Enter Product ID to delete: ", ParseID,
		"Invalid input. Please enter a positive number for ID.")
	if !ok {
		return
	}

	err := s.repo.Delete(ctx, id)
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		fmt.Fprintf(s.out, "No product found with ID %d. Deletion failed.\n", id)
	case err != nil:
		s.logger.Error().Err(err).Int("id", id).Msg("failed to delete product")
		fmt.Fprintln(s.out, "Failed to delete product.")
	default:
		fmt.Fprintln(s.out, "Product deleted successfully.")
	}
}

func (s *Shell) searchProducts(ctx context.Context) {
	fmt.Fprintln(s.out, "\n--- Search Products by Name ---")
	fmt.Fprint(s.out, "Enter search term: ")
	term, ok := s.readLine()
	if !ok {
		return
	}
	if _, err := ParseName(term); err != nil {
		fmt.Fprintln(s.out, "Search term cannot be empty.")
		return
	}

	products, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		s.logger.Error().Err(err).Str("term", term).Msg("failed to search products")
		fmt.Fprintln(s.out, "Failed to search products.")
		return
	}

	fmt.Fprintf(s.out, "\n--- Search Results for %q ---\n", term)
	fmt.Fprint(s.out, render.Table(products))
	if len(products) == 0 {
		fmt.Fprintf(s.out, "No products found matching %q.\n", term)
	}
}

func (s *Shell) filterProducts(ctx context.Context) {
	fmt.Fprintln(s.out, "\n--- Filter Products by Quantity ---")
	threshold, ok := s.promptInt("Enter maximum quantity threshold: ", ParseQuantity,
		"Invalid input. Please enter a non-negative number.")
	if !ok {
		return
	}

	products, err := s.repo.FilterByQuantity(ctx, threshold)
	if err != nil {
		s.logger.Error().Err(err).Int("threshold", threshold).Msg("failed to filter products")
		fmt.Fprintln(s.out, "Failed to filter products.")
		return
	}

	fmt.Fprintf(s.out, "\n--- Products with Quantity Less Than %d ---\n", threshold)
	fmt.Fprint(s.out, render.Table(products))
	if len(products) == 0 {
		fmt.Fprintf(s.out, "No products found with quantity less than %d.\n", threshold)
	}
}

func (s *Shell) generateReport(ctx context.Context) {
	summary, err := report.Generate(ctx, s.repo)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to generate report")
		fmt.Fprintln(s.out, "Failed to generate report.")
		return
	}
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, render.Report(summary))
}

// promptProductDetails collects name, quantity and price, re-prompting each
// field until it is valid.
func (s *Shell) promptProductDetails() (models.Product, bool) {
	var p models.Product

	for {
		fmt.Fprint(s.out, "Enter Product Name: ")
		line, ok := s.readLine()
		if !ok {
			return models.Product{}, false
		}
		name, err := ParseName(line)
		if err != nil {
			fmt.Fprintln(s.out, "Product name cannot be empty. Please try again.")
			continue
		}
		p.Name = name
		break
	}

	quantity, ok := s.promptInt("Enter Quantity: ", ParseQuantity,
		"Invalid input. Please enter a non-negative number for quantity.")
	if !ok {
		return models.Product{}, false
	}
	p.Quantity = quantity

	for {
		fmt.Fprint(s.out, "Enter Price: ")
		line, ok := s.readLine()
		if !ok {
			return models.Product{}, false
		}
		price, err := ParsePrice(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a non-negative number for price.")
			continue
		}
		p.Price = price
		break
	}

	return p, true
}

// promptInt re-prompts until parse accepts the input. The second return is
// false once input is exhausted.
func (s *Shell) promptInt(prompt string, parse func(string) (int, error), invalid string) (int, bool) {
	for {
		fmt.Fprint(s.out, prompt)
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		n, err := parse(line)
		if err != nil {
			fmt.Fprintln(s.out, invalid)
			continue
		}
		return n, true
	}
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
