package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"catalogapi/internal/domain/entity"
	"catalogapi/internal/domain/repository"
	"catalogapi/pkg/errors"
)

const (
	productsCollection = "products"
	countersCollection = "counters"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) doc(id int64) *firestore.DocumentRef {
	return r.client.Collection(productsCollection).Doc(strconv.FormatInt(id, 10))
}

// Create assigns the next integer id from a counter document inside the same
// transaction that writes the product.
func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	counter := r.client.Collection(countersCollection).Doc(productsCollection)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var next int64 = 1
		snap, err := tx.Get(counter)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil {
			value, err := snap.DataAt("value")
			if err != nil {
				return err
			}
			if current, ok := value.(int64); ok {
				next = current + 1
			}
		}

		product.ID = next
		if err := tx.Set(counter, map[string]interface{}{"value": next}); err != nil {
			return err
		}
		return tx.Create(r.doc(next), product)
	})
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	doc, err := r.doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now().UTC()

	// Update, unlike Set, fails with NotFound when the document is gone.
	_, err := r.doc(product.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: product.Name},
		{Path: "description", Value: product.Description},
		{Path: "price", Value: product.Price},
		{Path: "quantity", Value: product.Quantity},
		{Path: "category", Value: product.Category},
		{Path: "updatedAt", Value: product.UpdatedAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

func (r *firestoreProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	refs, err := r.client.Collection(productsCollection).DocumentRefs(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to delete products", err)
	}

	bw := r.client.BulkWriter(ctx)
	for _, ref := range refs {
		if _, err := bw.Delete(ref); err != nil {
			bw.End()
			return 0, errors.Internal("Failed to delete products", err)
		}
	}
	bw.End()

	return int64(len(refs)), nil
}

func (r *firestoreProductRepository) Count(ctx context.Context, filter entity.ProductFilter) (int64, error) {
	products, err := r.matching(ctx, filter)
	if err != nil {
		return 0, errors.Internal("Failed to count products", err)
	}

	return int64(len(products)), nil
}

func (r *firestoreProductRepository) List(ctx context.Context, filter entity.ProductFilter, offset, limit int) ([]*entity.Product, error) {
	products, err := r.matching(ctx, filter)
	if err != nil {
		return nil, errors.Internal("Failed to list products", err)
	}

	// Manual pagination
	if offset >= len(products) {
		return []*entity.Product{}, nil
	}
	end := len(products)
	if limit < end-offset {
		end = offset + limit
	}

	return products[offset:end], nil
}

// matching pushes the category equality down to Firestore and evaluates the
// rest of the filter in memory, since Firestore has no substring search and
// limits inequality filters. Results are sorted newest first.
func (r *firestoreProductRepository) matching(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := r.client.Collection(productsCollection).Query
	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(docs))
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, err
		}
		if filter.Matches(&product) {
			products = append(products, &product)
		}
	}

	sortNewestFirst(products)
	return products, nil
}

func sortNewestFirst(products []*entity.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		}
		return products[i].ID > products[j].ID
	})
}
