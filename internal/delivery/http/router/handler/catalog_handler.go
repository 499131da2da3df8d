package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the read-only product and course listings.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts returns every product listing.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.ListProducts(c.Request().Context()), "")
}

// ListCourses returns every course listing.
func (h *CatalogHandler) ListCourses(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.ListCourses(c.Request().Context()), "")
}
