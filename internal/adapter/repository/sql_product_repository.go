package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"catalogapi/internal/domain/entity"
	"catalogapi/internal/domain/repository"
	"catalogapi/pkg/errors"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Fixed width so that text timestamps in sqlite sort chronologically.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

const productColumns = "id, name, description, price, quantity, category, created_at, updated_at"

type sqlProductRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLProductRepository(db *sql.DB, dialect Dialect) repository.ProductRepository {
	return &sqlProductRepository{
		db:      db,
		dialect: dialect,
	}
}

func (r *sqlProductRepository) query(q string) string {
	return rebind(r.dialect, q)
}

func (r *sqlProductRepository) timeArg(t time.Time) interface{} {
	if r.dialect == DialectSQLite {
		return t.UTC().Format(timestampLayout)
	}
	return t.UTC()
}

func (r *sqlProductRepository) Create(ctx context.Context, product *entity.Product) error {
	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	err := r.db.QueryRowContext(ctx, r.query(`
		INSERT INTO products (name, description, price, quantity, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`),
		product.Name,
		product.Description,
		product.Price,
		product.Quantity,
		product.Category,
		r.timeArg(product.CreatedAt),
		r.timeArg(product.UpdatedAt),
	).Scan(&product.ID)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *sqlProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	row := r.db.QueryRowContext(ctx, r.query("SELECT "+productColumns+" FROM products WHERE id = ?"), id)

	product, err := scanProduct(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	return product, nil
}

func (r *sqlProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, r.query(`
		UPDATE products
		SET name = ?, description = ?, price = ?, quantity = ?, category = ?, updated_at = ?
		WHERE id = ?`),
		product.Name,
		product.Description,
		product.Price,
		product.Quantity,
		product.Category,
		r.timeArg(product.UpdatedAt),
		product.ID,
	)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return requireAffected(result, "Failed to update product")
}

func (r *sqlProductRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, r.query("DELETE FROM products WHERE id = ?"), id)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return requireAffected(result, "Failed to delete product")
}

func (r *sqlProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM products")
	if err != nil {
		return 0, errors.Internal("Failed to delete products", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Internal("Failed to delete products", err)
	}

	return deleted, nil
}

func (r *sqlProductRepository) Count(ctx context.Context, filter entity.ProductFilter) (int64, error) {
	p := buildPredicate(r.dialect, filter)

	var total int64
	err := r.db.QueryRowContext(ctx, r.query("SELECT COUNT(*) FROM products"+p.where()), p.args...).Scan(&total)
	if err != nil {
		return 0, errors.Internal("Failed to count products", err)
	}

	return total, nil
}

func (r *sqlProductRepository) List(ctx context.Context, filter entity.ProductFilter, offset, limit int) ([]*entity.Product, error) {
	p := buildPredicate(r.dialect, filter)

	q := "SELECT " + productColumns + " FROM products" + p.where() +
		" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args := append(append([]interface{}{}, p.args...), limit, offset)

	rows, err := r.db.QueryContext(ctx, r.query(q), args...)
	if err != nil {
		return nil, errors.Internal("Failed to list products", err)
	}
	defer rows.Close()

	products := make([]*entity.Product, 0, limit)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Internal("Failed to iterate products", err)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var (
		product     entity.Product
		description sql.NullString
		category    sql.NullString
	)

	err := row.Scan(
		&product.ID,
		&product.Name,
		&description,
		&product.Price,
		&product.Quantity,
		&category,
		timestamp{&product.CreatedAt},
		timestamp{&product.UpdatedAt},
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		product.Description = &description.String
	}
	if category.Valid {
		product.Category = &category.String
	}

	return &product, nil
}

func requireAffected(result sql.Result, message string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Internal(message, err)
	}
	if affected == 0 {
		return errors.NotFound("Product", sql.ErrNoRows)
	}
	return nil
}

// timestamp scans both native time values (postgres) and the text layout
// used for sqlite.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return err
		}
	}
	*ts.t = t.UTC()
	return nil
}
