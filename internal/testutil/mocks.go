package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"catalogapi/internal/domain/entity"
	"catalogapi/pkg/errors"
)

// MockProductRepository is an in-memory ProductRepository. The On* hooks run
// before the default behavior and short-circuit it when they return an error.
type MockProductRepository struct {
	mu       sync.Mutex
	products map[int64]*entity.Product
	nextID   int64

	OnCount func(filter entity.ProductFilter) error
	OnList  func(filter entity.ProductFilter, offset, limit int) error
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[int64]*entity.Product),
	}
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	product.ID = m.nextID
	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	stored := *product
	m.products[product.ID] = &stored
	return nil
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	found := *product
	return &found, nil
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	product.UpdatedAt = time.Now().UTC()
	stored := *product
	m.products[product.ID] = &stored
	return nil
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(m.products, id)
	return nil
}

func (m *MockProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deleted := int64(len(m.products))
	m.products = make(map[int64]*entity.Product)
	return deleted, nil
}

func (m *MockProductRepository) Count(ctx context.Context, filter entity.ProductFilter) (int64, error) {
	if m.OnCount != nil {
		if err := m.OnCount(filter); err != nil {
			return 0, err
		}
	}
	return int64(len(m.matching(filter))), nil
}

func (m *MockProductRepository) List(ctx context.Context, filter entity.ProductFilter, offset, limit int) ([]*entity.Product, error) {
	if m.OnList != nil {
		if err := m.OnList(filter, offset, limit); err != nil {
			return nil, err
		}
	}

	products := m.matching(filter)
	if offset >= len(products) {
		return []*entity.Product{}, nil
	}
	end := len(products)
	if limit < end-offset {
		end = offset + limit
	}
	return products[offset:end], nil
}

func (m *MockProductRepository) matching(filter entity.ProductFilter) []*entity.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	var products []*entity.Product
	for _, p := range m.products {
		if filter.Matches(p) {
			found := *p
			products = append(products, &found)
		}
	}

	sort.Slice(products, func(i, j int) bool {
		if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		}
		return products[i].ID > products[j].ID
	})
	return products
}
