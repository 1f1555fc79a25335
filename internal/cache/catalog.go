package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mkuznecov/northwind-api/internal/domain"
)

const categoriesKey = "categories"

// Catalog caches the rarely-changing read side: the category list and
// products per category. Customers are never cached so reads always
// see their own writes.
type Catalog struct {
	categories *lru.Cache[string, []domain.Category]
	products   *lru.Cache[int64, []domain.Product]
}

func New(size int) (*Catalog, error) {
	cats, err := lru.New[string, []domain.Category](1)
	if err != nil {
		return nil, err
	}
	prods, err := lru.New[int64, []domain.Product](size)
	if err != nil {
		return nil, err
	}
	return &Catalog{categories: cats, products: prods}, nil
}

func (c *Catalog) Categories() ([]domain.Category, bool) {
	return c.categories.Get(categoriesKey)
}

func (c *Catalog) SetCategories(v []domain.Category) {
	c.categories.Add(categoriesKey, v)
}

func (c *Catalog) CategoryProducts(categoryID int64) ([]domain.Product, bool) {
	return c.products.Get(categoryID)
}

func (c *Catalog) SetCategoryProducts(categoryID int64, v []domain.Product) {
	c.products.Add(categoryID, v)
}

// Invalidate drops everything cached. Exposed for future write paths
// on the catalog; today the catalog is read-only.
func (c *Catalog) Invalidate() {
	c.categories.Purge()
	c.products.Purge()
}
