package repository

import (
	"context"
	"time"

	"catalogapi/internal/domain/entity"
	"catalogapi/internal/domain/repository"
)

// OperationRecorder receives one observation per store call.
type OperationRecorder interface {
	RecordStoreOperation(operation string, duration time.Duration, err error)
}

type instrumentedProductRepository struct {
	next     repository.ProductRepository
	recorder OperationRecorder
}

func NewInstrumentedProductRepository(next repository.ProductRepository, recorder OperationRecorder) repository.ProductRepository {
	return &instrumentedProductRepository{
		next:     next,
		recorder: recorder,
	}
}

func (r *instrumentedProductRepository) observe(operation string, start time.Time, err error) {
	r.recorder.RecordStoreOperation(operation, time.Since(start), err)
}

func (r *instrumentedProductRepository) Create(ctx context.Context, product *entity.Product) (err error) {
	defer func(start time.Time) { r.observe("create", start, err) }(time.Now())
	return r.next.Create(ctx, product)
}

func (r *instrumentedProductRepository) GetByID(ctx context.Context, id int64) (product *entity.Product, err error) {
	defer func(start time.Time) { r.observe("get", start, err) }(time.Now())
	return r.next.GetByID(ctx, id)
}

func (r *instrumentedProductRepository) Update(ctx context.Context, product *entity.Product) (err error) {
	defer func(start time.Time) { r.observe("update", start, err) }(time.Now())
	return r.next.Update(ctx, product)
}

func (r *instrumentedProductRepository) Delete(ctx context.Context, id int64) (err error) {
	defer func(start time.Time) { r.observe("delete", start, err) }(time.Now())
	return r.next.Delete(ctx, id)
}

func (r *instrumentedProductRepository) DeleteAll(ctx context.Context) (deleted int64, err error) {
	defer func(start time.Time) { r.observe("delete_all", start, err) }(time.Now())
	return r.next.DeleteAll(ctx)
}

func (r *instrumentedProductRepository) Count(ctx context.Context, filter entity.ProductFilter) (total int64, err error) {
	defer func(start time.Time) { r.observe("count", start, err) }(time.Now())
	return r.next.Count(ctx, filter)
}

func (r *instrumentedProductRepository) List(ctx context.Context, filter entity.ProductFilter, offset, limit int) (products []*entity.Product, err error) {
	defer func(start time.Time) { r.observe("list", start, err) }(time.Now())
	return r.next.List(ctx, filter, offset, limit)
}
