package repo

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dojodoskages/storefront/internal/events"
	"github.com/dojodoskages/storefront/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartLine{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func newTestCatalog(t *testing.T) (*Catalog, *events.Bus) {
	t.Helper()

	bus := events.NewBus()
	catalog, err := NewCatalog(newTestDB(t), bus)
	require.NoError(t, err)
	return catalog, bus
}

func testProduct(name, collection string, priceCents int64) *models.Product {
	return &models.Product{
		Name:        name,
		Collection:  collection,
		Description: "Produto de teste com descrição longa o suficiente.",
		PriceCents:  priceCents,
		Sizes:       []string{"P", "M", "G"},
		Images:      []string{"https://example.com/" + name + ".jpg"},
	}
}

func strPtr(s string) *string { return &s }
func i64Ptr(n int64) *int64   { return &n }
