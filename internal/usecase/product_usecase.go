package usecase

import (
	"context"
	"math"
	"strings"

	"catalogapi/internal/domain/entity"
	"catalogapi/internal/domain/repository"
	"catalogapi/pkg/errors"
	"catalogapi/pkg/logger"
	"catalogapi/pkg/utils"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

type CreateProductInput struct {
	Name        string
	Description *string
	Price       float64
	Quantity    int
	Category    *string
}

// UpdateProductInput holds a partial update; nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
	Category    *string
}

func (in UpdateProductInput) IsEmpty() bool {
	return in.Name == nil && in.Description == nil && in.Price == nil && in.Quantity == nil && in.Category == nil
}

// ListProductsQuery carries the raw, untrusted listing parameters exactly as
// they arrived. Empty strings mean absent.
type ListProductsQuery struct {
	Category string
	MinPrice string
	MaxPrice string
	InStock  string
	Search   string
	Page     string
	Limit    string
}

type ProductList struct {
	Items []*entity.Product
	Meta  entity.PaginationMeta
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if err := validateProductFields(&input.Name, &input.Price, &input.Quantity); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Category:    input.Category,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Debug("Created product %d", product.ID)
	return product, nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*entity.Product, error) {
	if input.IsEmpty() {
		return nil, errors.Validation("At least one field must be provided for update")
	}
	if err := validateProductFields(input.Name, input.Price, input.Quantity); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Category != nil {
		product.Category = input.Category
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return uc.productRepo.Delete(ctx, id)
}

// ListProducts normalizes the raw query, then counts and fetches one page
// with the same filter. Bad input never fails the call; only store errors
// do, and those are reported without detail.
func (uc *ProductUseCase) ListProducts(ctx context.Context, query ListProductsQuery) (*ProductList, error) {
	pagination := utils.NormalizePagination(query.Page, query.Limit)
	filter := ParseProductFilter(query)

	total, err := uc.productRepo.Count(ctx, filter)
	if err != nil {
		logger.Error("Error counting products: %v", err)
		return nil, errors.Internal("Failed to list products", err)
	}

	products, err := uc.productRepo.List(ctx, filter, pagination.Offset, pagination.Limit)
	if err != nil {
		logger.Error("Error listing products: %v", err)
		return nil, errors.Internal("Failed to list products", err)
	}
	if products == nil {
		products = []*entity.Product{}
	}

	return &ProductList{
		Items: products,
		Meta:  entity.NewPaginationMeta(total, pagination.Page, pagination.Limit),
	}, nil
}

// validateProductFields checks whichever of the fields are present.
func validateProductFields(name *string, price *float64, quantity *int) error {
	var details []string

	if name != nil && strings.TrimSpace(*name) == "" {
		details = append(details, "name must be a non-empty string")
	}
	if price != nil && (*price < 0 || math.IsNaN(*price) || math.IsInf(*price, 0)) {
		details = append(details, "price must be a non-negative number")
	}
	if quantity != nil && *quantity < 0 {
		details = append(details, "quantity must be a non-negative integer")
	}

	if len(details) > 0 {
		return errors.Validation(details...)
	}
	return nil
}
