package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mkuznecov/northwind-api/internal/domain"
)

type CatalogRepo struct {
	pool *pgxpool.Pool
}

func NewCatalogRepo(pool *pgxpool.Pool) *CatalogRepo { return &CatalogRepo{pool: pool} }

func (r *CatalogRepo) Categories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category_id, category_name, description
		FROM categories
		ORDER BY category_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.CategoryName, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) CategoryProducts(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, product_name, category_id, unit, price
		FROM products
		WHERE category_id = $1
		ORDER BY product_name
	`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *CatalogRepo) Products(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, product_name, category_id, unit, price
		FROM products
		ORDER BY product_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ProductsByCategory returns every category with its products. The
// LEFT JOIN keeps categories that have no products yet; their rows
// carry NULL product columns and contribute an empty group.
func (r *CatalogRepo) ProductsByCategory(ctx context.Context) ([]domain.ProductGroup, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.category_id, c.category_name,
		       p.product_id, p.product_name, p.unit, p.price
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.category_id
		ORDER BY c.category_name, p.product_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.ProductGroup
	for rows.Next() {
		var (
			catID       int64
			catName     string
			pid         *int64
			pname, unit *string
			price       decimal.NullDecimal
		)
		if err := rows.Scan(&catID, &catName, &pid, &pname, &unit, &price); err != nil {
			return nil, err
		}

		if len(groups) == 0 || groups[len(groups)-1].CategoryID != catID {
			groups = append(groups, domain.ProductGroup{
				CategoryID:   catID,
				CategoryName: catName,
				Products:     []domain.Product{},
			})
		}
		if pid == nil {
			continue
		}
		g := &groups[len(groups)-1]
		g.Products = append(g.Products, domain.Product{
			ID:          *pid,
			ProductName: strDeref(pname),
			CategoryID:  catID,
			Unit:        strDeref(unit),
			Price:       price.Decimal,
		})
	}
	return groups, rows.Err()
}

func (r *CatalogRepo) ProductBuyers(ctx context.Context, productID int64) ([]domain.CustomerRef, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT c.customer_id, c.customer_name, c.contact_name, c.city, c.country
		FROM customers c
		JOIN orders o ON o.customer_id = c.customer_id
		JOIN order_details od ON od.order_id = o.order_id
		WHERE od.product_id = $1
		ORDER BY c.customer_name
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CustomerRef
	for rows.Next() {
		var c domain.CustomerRef
		if err := rows.Scan(&c.ID, &c.CustomerName, &c.ContactName, &c.City, &c.Country); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.ProductName, &p.CategoryID, &p.Unit, &p.Price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
