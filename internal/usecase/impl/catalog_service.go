package impl

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/catalog"
	"storefront/internal/usecase"
)

// catalogService implements the CatalogUsecase interface over the in-memory
// catalog loaded at startup.
type catalogService struct {
	catalog *catalog.Catalog
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(c *catalog.Catalog) usecase.CatalogUsecase {
	return &catalogService{catalog: c}
}

// ListProducts returns every product listing in catalog order.
func (srv *catalogService) ListProducts(_ context.Context) []entity.Product {
	return srv.catalog.Products()
}

// ListCourses returns every course listing in catalog order.
func (srv *catalogService) ListCourses(_ context.Context) []entity.Course {
	return srv.catalog.Courses()
}
