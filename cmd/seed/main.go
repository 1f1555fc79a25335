// Seed fills an empty northwind-style schema with a small dataset for
// local development. Safe to re-run: it skips seeding when customers
// already exist.
package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/mkuznecov/northwind-api/internal/config"
	"github.com/mkuznecov/northwind-api/internal/database"
)

type product struct {
	name     string
	category string
	unit     string
	price    string
}

var categories = map[string]string{
	"Beverages":  "Soft drinks, coffees, teas, beers, and ales",
	"Condiments": "Sweet and savory sauces, relishes, spreads, and seasonings",
	"Seafood":    "Seaweed and fish",
}

var products = []product{
	{"Chai", "Beverages", "10 boxes x 20 bags", "18.00"},
	{"Chang", "Beverages", "24 - 12 oz bottles", "19.00"},
	{"Aniseed Syrup", "Condiments", "12 - 550 ml bottles", "10.00"},
	{"Ikura", "Seafood", "12 - 200 ml jars", "31.00"},
}

var customers = [][6]string{
	{"Alfreds Futterkiste", "Maria Anders", "Obere Str. 57", "Berlin", "12209", "Germany"},
	{"Around the Horn", "Thomas Hardy", "120 Hanover Sq.", "London", "WA1 1DP", "UK"},
	{"Bólido Comidas preparadas", "Martín Sommer", "C/ Araquil, 67", "Madrid", "28023", "Spain"},
}

func main() {
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	var existing int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&existing); err != nil {
		log.Fatalf("count customers: %v", err)
	}
	if existing > 0 {
		logger.Info("customers already present, nothing to do", zap.Int64("count", existing))
		return
	}

	catIDs := make(map[string]int64, len(categories))
	for name, desc := range categories {
		var id int64
		if err := pool.QueryRow(ctx, `
			INSERT INTO categories (category_name, description)
			VALUES ($1, $2)
			RETURNING category_id
		`, name, desc).Scan(&id); err != nil {
			log.Fatalf("insert category %s: %v", name, err)
		}
		catIDs[name] = id
	}

	for _, p := range products {
		if _, err := pool.Exec(ctx, `
			INSERT INTO products (product_name, category_id, unit, price)
			VALUES ($1, $2, $3, $4)
		`, p.name, catIDs[p.category], p.unit, p.price); err != nil {
			log.Fatalf("insert product %s: %v", p.name, err)
		}
	}

	for _, c := range customers {
		if _, err := pool.Exec(ctx, `
			INSERT INTO customers (customer_name, contact_name, address, city, postal_code, country)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, c[0], c[1], c[2], c[3], c[4], c[5]); err != nil {
			log.Fatalf("insert customer %s: %v", c[0], err)
		}
	}

	logger.Info("seeded",
		zap.Int("categories", len(categories)),
		zap.Int("products", len(products)),
		zap.Int("customers", len(customers)),
	)
}
