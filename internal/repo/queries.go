package repo

// Product statements with fixed shapes. The composed SELECTs (search, filter,
// aggregates) are built with squirrel in product_sqlite.go.
const (
	queryInsertProduct = `INSERT INTO products (name, quantity, price) VALUES (?, ?, ?)`

	queryUpdateProduct = `UPDATE products SET name = ?, quantity = ?, price = ? WHERE id = ?`

	queryDeleteProduct = `DELETE FROM products WHERE id = ?`
)
