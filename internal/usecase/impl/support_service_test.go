package impl

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/catalog"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const implTestProducts = `[
  {"id": "prod-analytics", "name": "Analytics Suite", "price": 99.0, "features": ["dashboards", "alerts"]},
  {"id": "prod-hat", "name": "Logo Hat", "price": 12.5}
]`

const implTestCourses = `[
  {"id": "course-ai", "title": "AI Fundamentals", "level": "beginner", "duration": "6 weeks", "price": 49.99},
  {"id": "course-go", "title": "Go in Production", "level": "advanced", "duration": "4 weeks", "price": 79.99}
]`

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	dir := t.TempDir()
	productsPath := filepath.Join(dir, "products.json")
	coursesPath := filepath.Join(dir, "courses.json")
	require.NoError(t, os.WriteFile(productsPath, []byte(implTestProducts), 0o600))
	require.NoError(t, os.WriteFile(coursesPath, []byte(implTestCourses), 0o600))

	c, err := catalog.New(&config.Config{
		Catalog: &config.CatalogConfig{
			ProductsPath: productsPath,
			CoursesPath:  coursesPath,
		},
	})
	require.NoError(t, err)

	return c
}

func createTestSupportService(t *testing.T) (usecase.SupportUsecase, *mockSvc.MockContentGenerator) {
	generator := mockSvc.NewMockContentGenerator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSupportService(SupportServiceParams{
		Generator: generator,
		Catalog:   newTestCatalog(t),
		Logger:    logger,
	})

	return service, generator
}

func TestSupportService_Chat(t *testing.T) {
	service, generator := createTestSupportService(t)

	ctx := context.Background()
	generator.EXPECT().
		AnswerCustomerQuestion(ctx, "How do I reset my password?").
		Return("Use the account page to reset your password.")

	output := service.Chat(ctx, &usecase.ChatInput{Question: "How do I reset my password?"})

	require.NotNil(t, output)
	assert.Equal(t, "Use the account page to reset your password.", output.Response)
}

func TestSupportService_CourseOutline(t *testing.T) {
	service, generator := createTestSupportService(t)

	ctx := context.Background()
	generator.EXPECT().
		GenerateCourseOutline(ctx, "AI Fundamentals", "beginner", "6 weeks").
		Return("Week 1: Introduction")

	outline, err := service.CourseOutline(ctx, "course-ai")

	require.NoError(t, err)
	assert.Equal(t, "Week 1: Introduction", outline)
}

func TestSupportService_CourseOutline_UnknownCourse(t *testing.T) {
	service, _ := createTestSupportService(t)

	outline, err := service.CourseOutline(context.Background(), "course-ghost")

	assert.Empty(t, outline)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSupportService_ProductDescription(t *testing.T) {
	service, generator := createTestSupportService(t)

	ctx := context.Background()
	generator.EXPECT().
		GenerateProductDescription(ctx, "Analytics Suite", []string{"dashboards", "alerts"}).
		Return("Analytics Suite - dashboards and alerts for your data.")

	description, err := service.ProductDescription(ctx, "prod-analytics")

	require.NoError(t, err)
	assert.Contains(t, description, "Analytics Suite")
}

func TestSupportService_ProductDescription_UnknownProduct(t *testing.T) {
	service, _ := createTestSupportService(t)

	description, err := service.ProductDescription(context.Background(), "prod-ghost")

	assert.Empty(t, description)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_Listings(t *testing.T) {
	service := NewCatalogService(newTestCatalog(t))

	ctx := context.Background()

	products := service.ListProducts(ctx)
	require.Len(t, products, 2)
	assert.Equal(t, "prod-analytics", products[0].ID)

	courses := service.ListCourses(ctx)
	require.Len(t, courses, 2)
	assert.Equal(t, "course-ai", courses[0].ID)
}
