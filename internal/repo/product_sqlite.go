package repo

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

// SQLiteProductRepository is a ProductRepository backed by an embedded SQLite
// database. Every operation is a single parameterized statement.
type SQLiteProductRepository struct {
	db *sql.DB
}

func NewSQLiteProductRepository(db *sql.DB) *SQLiteProductRepository {
	return &SQLiteProductRepository{db: db}
}

func selectProducts() sq.SelectBuilder {
	return sq.Select("id", "name", "quantity", "price").From("products")
}

func (r *SQLiteProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	res, err := r.db.ExecContext(ctx, queryInsertProduct, p.Name, p.Quantity, p.Price)
	if err != nil {
		return models.Product{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Product{}, err
	}
	p.ID = int(id)
	return p, nil
}

func (r *SQLiteProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.queryProducts(ctx, selectProducts().OrderBy("id"))
}

func (r *SQLiteProductRepository) Update(ctx context.Context, p models.Product) error {
	res, err := r.db.ExecContext(ctx, queryUpdateProduct, p.Name, p.Quantity, p.Price, p.ID)
	if err != nil {
		return err
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *SQLiteProductRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, queryDeleteProduct, id)
	if err != nil {
		return err
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// SearchByName returns products whose name contains term, case-insensitively.
func (r *SQLiteProductRepository) SearchByName(ctx context.Context, term string) ([]models.Product, error) {
	builder := selectProducts().
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		OrderBy("id")
	return r.queryProducts(ctx, builder)
}

// FilterByQuantity returns products with quantity below threshold, ordered by
// quantity ascending.
func (r *SQLiteProductRepository) FilterByQuantity(ctx context.Context, threshold int) ([]models.Product, error) {
	builder := selectProducts().
		Where(sq.Lt{"quantity": threshold}).
		OrderBy("quantity")
	return r.queryProducts(ctx, builder)
}

// CountAndTotalValue returns the row count and the sum of quantity*price over
// all products. An empty table yields (0, 0.0); SUM returns NULL there.
func (r *SQLiteProductRepository) CountAndTotalValue(ctx context.Context) (Summary, error) {
	query, args, err := sq.Select("COUNT(*)", "SUM(quantity * price)").From("products").ToSql()
	if err != nil {
		return Summary{}, err
	}

	var count int
	var total sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count, &total); err != nil {
		return Summary{}, err
	}
	return Summary{TotalItems: count, TotalValue: total.Float64}, nil
}

func (r *SQLiteProductRepository) queryProducts(ctx context.Context, builder sq.SelectBuilder) ([]models.Product, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
