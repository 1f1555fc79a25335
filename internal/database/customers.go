package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkuznecov/northwind-api/internal/domain"
)

// CustomerRepo runs all customer queries through the shared pool.
// Query/QueryRow/Exec acquire a connection and return it on every path,
// so no connection outlives its own statement.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo { return &CustomerRepo{pool: pool} }

func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT customer_id, customer_name, contact_name, address, city, postal_code, country
		FROM customers
		ORDER BY customer_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.CustomerName, &c.ContactName, &c.Address,
			&c.City, &c.PostalCode, &c.Country); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, `
		SELECT customer_id, customer_name, contact_name, address, city, postal_code, country
		FROM customers
		WHERE customer_id = $1
	`, id).Scan(&c.ID, &c.CustomerName, &c.ContactName, &c.Address,
		&c.City, &c.PostalCode, &c.Country)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Orders returns the customer's order history, one line per
// order/product pairing, newest orders first. An empty history is a
// valid result, not an error.
func (r *CustomerRepo) Orders(ctx context.Context, id int64) ([]domain.OrderLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.order_id, o.order_date, p.product_id, p.product_name, od.quantity
		FROM orders o
		JOIN order_details od ON od.order_id = o.order_id
		JOIN products p ON p.product_id = od.product_id
		WHERE o.customer_id = $1
		ORDER BY o.order_date DESC, o.order_id DESC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.OrderLine
	for rows.Next() {
		var l domain.OrderLine
		if err := rows.Scan(&l.OrderID, &l.OrderDate, &l.ProductID, &l.ProductName, &l.Quantity); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *CustomerRepo) Create(ctx context.Context, c domain.NewCustomer) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO customers (customer_name, contact_name, address, city, postal_code, country)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING customer_id
	`, c.CustomerName, c.ContactName, c.Address, c.City, c.PostalCode, c.Country).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Delete runs the check-then-delete inside one transaction so a
// dependent order inserted between the check and the delete cannot
// slip through. The deferred rollback is a no-op after commit.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var hasOrders bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM orders WHERE customer_id = $1)`, id,
	).Scan(&hasOrders); err != nil {
		return err
	}
	if hasOrders {
		return domain.ErrHasOrders
	}

	tag, err := tx.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}
