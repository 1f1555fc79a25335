package domain

import "time"

type Customer struct {
	ID           int64  `json:"customerId"`
	CustomerName string `json:"customerName"`
	ContactName  string `json:"contactName"`
	Address      string `json:"address"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// NewCustomer is the create payload. The store assigns the id.
type NewCustomer struct {
	CustomerName string `json:"customerName"`
	ContactName  string `json:"contactName"`
	Address      string `json:"address"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// OrderLine is one row of a customer's order history,
// one line per order/product pairing.
type OrderLine struct {
	OrderID     int64     `json:"orderId"`
	OrderDate   time.Time `json:"orderDate"`
	ProductID   int64     `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
}
