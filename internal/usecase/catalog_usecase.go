package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase defines the interface for read-only catalog operations.
type CatalogUsecase interface {
	// ListProducts returns every product listing in catalog order.
	ListProducts(ctx context.Context) []entity.Product

	// ListCourses returns every course listing in catalog order.
	ListCourses(ctx context.Context) []entity.Course
}
