package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProducts = `[
  {"id": "svc-content", "name": "AI Content Creation", "price": 1500, "features": ["blog posts", "social media"]},
  {"id": "svc-website", "name": "Responsive Website", "price": 5000}
]`

const testCourses = `[
  {"id": "course-ai", "title": "AI Programming", "level": "beginner", "duration": "4 weeks", "price": 2500},
  {"id": "course-sec", "title": "Cybersecurity Essentials", "level": "intermediate", "duration": "6 weeks", "price": 3000}
]`

func writeTestCatalog(t *testing.T, products, courses string) *config.Config {
	t.Helper()

	dir := t.TempDir()
	productsPath := filepath.Join(dir, "products.json")
	coursesPath := filepath.Join(dir, "courses.json")
	require.NoError(t, os.WriteFile(productsPath, []byte(products), 0o600))
	require.NoError(t, os.WriteFile(coursesPath, []byte(courses), 0o600))

	return &config.Config{
		Catalog: &config.CatalogConfig{
			ProductsPath: productsPath,
			CoursesPath:  coursesPath,
		},
	}
}

func TestNew_LoadsBothDocuments(t *testing.T) {
	cfg := writeTestCatalog(t, testProducts, testCourses)

	c, err := New(cfg)
	require.NoError(t, err)

	require.Len(t, c.Products(), 2)
	require.Len(t, c.Courses(), 2)

	// Document order is preserved.
	assert.Equal(t, "svc-content", c.Products()[0].ID)
	assert.Equal(t, "course-sec", c.Courses()[1].ID)
}

func TestCatalog_Lookups(t *testing.T) {
	cfg := writeTestCatalog(t, testProducts, testCourses)

	c, err := New(cfg)
	require.NoError(t, err)

	p, ok := c.FindProduct("svc-website")
	require.True(t, ok)
	assert.Equal(t, "Responsive Website", p.Name)
	assert.InDelta(t, 5000, p.Price, 0.001)

	course, ok := c.FindCourse("course-ai")
	require.True(t, ok)
	assert.Equal(t, "AI Programming", course.Title)

	_, ok = c.FindProduct("missing")
	assert.False(t, ok)
	_, ok = c.FindCourse("missing")
	assert.False(t, ok)
}

func TestNew_MissingDocumentFailsStartup(t *testing.T) {
	cfg := writeTestCatalog(t, testProducts, testCourses)
	cfg.Catalog.CoursesPath = filepath.Join(t.TempDir(), "nope.json")

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	dup := `[{"id": "svc-content", "name": "A", "price": 1}, {"id": "svc-content", "name": "B", "price": 2}]`
	cfg := writeTestCatalog(t, dup, testCourses)

	_, err := New(cfg)
	assert.ErrorContains(t, err, "duplicate product id")
}

func TestNew_RejectsMalformedJSON(t *testing.T) {
	cfg := writeTestCatalog(t, "{not json", testCourses)

	_, err := New(cfg)
	assert.Error(t, err)
}
