package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogapi/internal/domain/entity"
	"catalogapi/pkg/config"
)

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, &config.Config{DatabaseDriver: "sqlite", DatabasePath: ":memory:"})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Products.Create(ctx, &entity.Product{Name: "Widget"}))

	total, err := s.Products.Count(ctx, entity.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{DatabaseDriver: "mongo"})
	assert.Error(t, err)
}
