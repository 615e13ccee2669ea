package repo

import (
	"context"
	"sort"
	"strings"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used by the shell and render tests.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(_ context.Context, product models.Product) (models.Product, error) {
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products in insertion (ID) order.
func (r *InMemoryProductRepository) GetAll(_ context.Context) ([]models.Product, error) {
	return r.products, nil
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(_ context.Context, product models.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return nil
		}
	}
	return ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(_ context.Context, id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// SearchByName returns products whose name contains term, case-insensitively.
func (r *InMemoryProductRepository) SearchByName(_ context.Context, term string) ([]models.Product, error) {
	var matched []models.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// FilterByQuantity returns products with quantity below threshold, ordered by
// quantity ascending.
func (r *InMemoryProductRepository) FilterByQuantity(_ context.Context, threshold int) ([]models.Product, error) {
	var filtered []models.Product
	for _, p := range r.products {
		if p.Quantity < threshold {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Quantity < filtered[j].Quantity
	})
	return filtered, nil
}

// CountAndTotalValue returns the product count and sum of quantity*price.
func (r *InMemoryProductRepository) CountAndTotalValue(_ context.Context) (Summary, error) {
	s := Summary{TotalItems: len(r.products)}
	for _, p := range r.products {
		s.TotalValue += float64(p.Quantity) * p.Price
	}
	return s, nil
}

// Clear removes all products.
func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
