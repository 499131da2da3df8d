// Package catalog loads the static product and course documents at startup
// and serves them from memory. The catalog is immutable for the lifetime of
// the process; editing the documents requires a restart.
package catalog

import (
	"encoding/json"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Catalog holds the loaded listings and answers lookups by id.
type Catalog struct {
	products []entity.Product
	courses  []entity.Course

	productsByID map[string]*entity.Product
	coursesByID  map[string]*entity.Course
}

// New loads both catalog documents. A missing or malformed document is a
// startup failure, never a runtime one.
func New(cfg *config.Config) (*Catalog, error) {
	products, err := loadDocument[entity.Product](cfg.Catalog.ProductsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products catalog")
	}

	courses, err := loadDocument[entity.Course](cfg.Catalog.CoursesPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load courses catalog")
	}

	c := &Catalog{
		products:     products,
		courses:      courses,
		productsByID: make(map[string]*entity.Product, len(products)),
		coursesByID:  make(map[string]*entity.Course, len(courses)),
	}
	for i := range c.products {
		p := &c.products[i]
		if p.ID == "" {
			return nil, errors.Errorf("product at index %d has no id", i)
		}
		if _, exists := c.productsByID[p.ID]; exists {
			return nil, errors.Errorf("duplicate product id %q", p.ID)
		}
		c.productsByID[p.ID] = p
	}
	for i := range c.courses {
		course := &c.courses[i]
		if course.ID == "" {
			return nil, errors.Errorf("course at index %d has no id", i)
		}
		if _, exists := c.coursesByID[course.ID]; exists {
			return nil, errors.Errorf("duplicate course id %q", course.ID)
		}
		c.coursesByID[course.ID] = course
	}

	return c, nil
}

// Products returns every product listing in document order.
func (c *Catalog) Products() []entity.Product {
	return c.products
}

// Courses returns every course listing in document order.
func (c *Catalog) Courses() []entity.Course {
	return c.courses
}

// FindProduct looks up a product by id.
func (c *Catalog) FindProduct(id string) (*entity.Product, bool) {
	p, ok := c.productsByID[id]

	return p, ok
}

// FindCourse looks up a course by id.
func (c *Catalog) FindCourse(id string) (*entity.Course, bool) {
	course, ok := c.coursesByID[id]

	return course, ok
}

func loadDocument[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	return items, nil
}
