package repository

import (
	"context"

	"catalogapi/internal/domain/entity"
)

// ProductRepository is the record store behind the catalog. Count and List
// take the same filter so a page and its total are always computed from the
// same constraints. List orders newest first.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context, filter entity.ProductFilter) (int64, error)
	List(ctx context.Context, filter entity.ProductFilter, offset, limit int) ([]*entity.Product, error)
}
