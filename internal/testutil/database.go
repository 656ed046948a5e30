package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"catalogapi/internal/domain/entity"
	"catalogapi/internal/domain/repository"
	"catalogapi/internal/infrastructure/database"
)

// NewSQLiteDB returns a migrated in-memory database that is closed when the
// test ends.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db, database.DriverSQLite))
	return db
}

func StringPtr(s string) *string {
	return &s
}

func Float64Ptr(f float64) *float64 {
	return &f
}

// SeedProducts inserts count products named "Test Product 1..count", one
// minute apart so the last one is the newest. Product i costs 10*i, has
// quantity i and alternates between Accessories (odd) and Electronics (even).
func SeedProducts(t *testing.T, repo repository.ProductRepository, count int) []*entity.Product {
	t.Helper()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	products := make([]*entity.Product, 0, count)
	for i := 1; i <= count; i++ {
		category := "Accessories"
		if i%2 == 0 {
			category = "Electronics"
		}
		product := &entity.Product{
			Name:        fmt.Sprintf("Test Product %d", i),
			Description: StringPtr("Test Description"),
			Price:       float64(10 * i),
			Quantity:    i,
			Category:    StringPtr(category),
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), product))
		products = append(products, product)
	}

	return products
}
