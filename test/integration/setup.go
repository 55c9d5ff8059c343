package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Ricomaldo/multi-shop-demo-sub000/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS shops (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			shop_type VARCHAR(50) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS categories (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			shop_id VARCHAR(50) NOT NULL REFERENCES shops(id) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price DECIMAL(10, 2) NOT NULL,
			category_id VARCHAR(50) NOT NULL DEFAULT '',
			shop_id VARCHAR(50) NOT NULL REFERENCES shops(id) ON DELETE CASCADE,
			attributes JSONB,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_categories_shop_id ON categories(shop_id);
		CREATE INDEX IF NOT EXISTS idx_products_shop_id ON products(shop_id);
		CREATE INDEX IF NOT EXISTS idx_products_category_id ON products(category_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedCatalog inserts a two-shop catalog with categorised, attributed
// products into the database.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	shops := []struct {
		id, name string
		vertical model.Vertical
	}{
		{"SHOP-BREW", "Houblon & Co", model.VerticalBrewery},
		{"SHOP-TEA", "Les Jardins de Thé", model.VerticalTeaShop},
	}
	for _, s := range shops {
		_, err := pool.Exec(ctx,
			"INSERT INTO shops (id, name, shop_type) VALUES ($1, $2, $3)",
			s.id, s.name, string(s.vertical),
		)
		if err != nil {
			t.Fatalf("failed to seed shop %s: %v", s.id, err)
		}
	}

	categories := []struct {
		id, name, shopID string
	}{
		{"CAT-IPA", "IPA", "SHOP-BREW"},
		{"CAT-BLONDES", "Blondes", "SHOP-BREW"},
		{"CAT-VERTS", "Thés verts", "SHOP-TEA"},
	}
	for _, c := range categories {
		_, err := pool.Exec(ctx,
			"INSERT INTO categories (id, name, shop_id) VALUES ($1, $2, $3)",
			c.id, c.name, c.shopID,
		)
		if err != nil {
			t.Fatalf("failed to seed category %s: %v", c.id, err)
		}
	}

	products := []struct {
		id, name, categoryID, shopID string
		price                        float64
		attributes                   *string
	}{
		{"P001", "West Coast IPA", "CAT-IPA", "SHOP-BREW", 6.50,
			jsonPtr(`{"degre_alcool": 6.5, "amertume_ibu": 45, "type_houblon": "Cascade", "stock": 25}`)},
		{"P002", "Blonde légère", "CAT-BLONDES", "SHOP-BREW", 4.20,
			jsonPtr(`{"degre_alcool": 4.2, "amertume_ibu": 18, "type_houblon": "Saaz", "stock": 5}`)},
		{"P003", "Imperial Stout", "CAT-IPA", "SHOP-BREW", 8.90,
			jsonPtr(`{"degre_alcool": 11.0, "amertume_ibu": 60, "type_houblon": "Magnum", "stock": 0}`)},
		{"P004", "Verre dégustation", "", "SHOP-BREW", 3.00, nil},
		{"P005", "Darjeeling de printemps", "CAT-VERTS", "SHOP-TEA", 12.90,
			jsonPtr(`{"origine_plantation": "Darjeeling", "grade_qualite": "FTGFOP", "stock": 12}`)},
	}
	for _, p := range products {
		_, err := pool.Exec(ctx,
			"INSERT INTO products (id, name, price, category_id, shop_id, attributes) VALUES ($1, $2, $3, $4, $5, $6)",
			p.id, p.name, p.price, p.categoryID, p.shopID, p.attributes,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.id, err)
		}
	}
}

func jsonPtr(s string) *string { return &s }

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"products", "categories", "shops"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
