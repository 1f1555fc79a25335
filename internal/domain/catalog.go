package domain

import "github.com/shopspring/decimal"

type Category struct {
	ID           int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
}

type Product struct {
	ID          int64           `json:"productId"`
	ProductName string          `json:"productName"`
	CategoryID  int64           `json:"categoryId"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
}

// ProductGroup is one category together with its products.
// Categories without products keep an empty Products slice.
type ProductGroup struct {
	CategoryID   int64     `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Products     []Product `json:"products"`
}

// CustomerRef is the shortened customer row returned when listing
// buyers of a product.
type CustomerRef struct {
	ID           int64  `json:"customerId"`
	CustomerName string `json:"customerName"`
	ContactName  string `json:"contactName"`
	City         string `json:"city"`
	Country      string `json:"country"`
}
