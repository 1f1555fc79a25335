package domain

import "context"

type CustomerRepository interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id int64) (*Customer, error)
	Orders(ctx context.Context, id int64) ([]OrderLine, error)
	Create(ctx context.Context, c NewCustomer) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type CatalogRepository interface {
	Categories(ctx context.Context) ([]Category, error)
	CategoryProducts(ctx context.Context, categoryID int64) ([]Product, error)
	Products(ctx context.Context) ([]Product, error)
	ProductsByCategory(ctx context.Context) ([]ProductGroup, error)
	ProductBuyers(ctx context.Context, productID int64) ([]CustomerRef, error)
}
