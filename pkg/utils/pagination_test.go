package utils

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaginationPage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-5", 1},
		{"2.5", 1},
		{"1", 1},
		{"3", 3},
		{" 7 ", 7},
		{"99999999999999999999999", 1},
	}

	for _, tt := range tests {
		t.Run("page="+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePagination(tt.raw, "").Page)
		})
	}
}

func TestNormalizePaginationLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 10},
		{"xyz", 10},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"25", 25},
		{"100", 100},
		{"101", 100},
		{"200", 100},
	}

	for _, tt := range tests {
		t.Run("limit="+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePagination("", tt.raw).Limit)
		})
	}

	for limit := 1; limit <= MaxLimit; limit++ {
		assert.Equal(t, limit, NormalizePagination("1", strconv.Itoa(limit)).Limit)
	}
}

func TestNormalizePaginationOffset(t *testing.T) {
	assert.Equal(t, 0, NormalizePagination("1", "10").Offset)
	assert.Equal(t, 20, NormalizePagination("3", "10").Offset)
	assert.Equal(t, 990, NormalizePagination("100", "10").Offset)

	huge := NormalizePagination(strconv.Itoa(math.MaxInt), "100")
	assert.Equal(t, math.MaxInt, huge.Offset)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 25, TotalPages(25, 1))
}
