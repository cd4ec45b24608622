package repo

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dojodoskages/storefront/internal/events"
	"github.com/dojodoskages/storefront/internal/models"
)

var ErrNegativePrice = errors.New("price cannot be negative")

// Catalog owns the product list. Every successful mutation is announced
// on the bus after commit.
type Catalog struct {
	DB  *gorm.DB
	Bus *events.Bus

	seq atomic.Int64
}

func NewCatalog(db *gorm.DB, bus *events.Bus) (*Catalog, error) {
	c := &Catalog{DB: db, Bus: bus}

	var maxSeq int64
	if err := db.Model(&models.Product{}).Select("COALESCE(MAX(seq), 0)").Scan(&maxSeq).Error; err != nil {
		return nil, err
	}
	c.seq.Store(maxSeq)
	return c, nil
}

// ProductPatch carries the fields of a partial update; nil means "leave
// unchanged". The id is never patchable.
type ProductPatch struct {
	Name        *string   `json:"name"`
	Collection  *string   `json:"collection"`
	Description *string   `json:"description"`
	PriceCents  *int64    `json:"price_cents"`
	Sizes       *[]string `json:"sizes"`
	Images      *[]string `json:"images"`
}

// Create assigns a fresh id and appends the product. Ids come from
// uuid.New, so back-to-back creates within the same instant never
// collide.
func (r *Catalog) Create(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if prod.PriceCents < 0 {
		return nil, ErrNegativePrice
	}

	prod.ID = uuid.NewString()
	prod.Seq = r.seq.Add(1)
	if err := r.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}

	r.Bus.Publish(events.Event{
		Topic: events.TopicProducts,
		Key:   prod.ID,
		Payload: map[string]any{
			"type":      "product_created",
			"productID": prod.ID,
			"name":      prod.Name,
			"product":   prod,
		},
	})
	return prod, nil
}

// Patch merges the given fields into the product. An absent id is a
// no-op and reports found=false.
func (r *Catalog) Patch(ctx context.Context, id string, patch ProductPatch) (*models.Product, bool, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&prod).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if patch.Name != nil {
		prod.Name = *patch.Name
	}
	if patch.Collection != nil {
		prod.Collection = *patch.Collection
	}
	if patch.Description != nil {
		prod.Description = *patch.Description
	}
	if patch.PriceCents != nil {
		if *patch.PriceCents < 0 {
			return nil, true, ErrNegativePrice
		}
		prod.PriceCents = *patch.PriceCents
	}
	if patch.Sizes != nil {
		prod.Sizes = *patch.Sizes
	}
	if patch.Images != nil {
		prod.Images = *patch.Images
	}

	if err := r.DB.WithContext(ctx).Save(&prod).Error; err != nil {
		return nil, true, err
	}

	r.Bus.Publish(events.Event{
		Topic: events.TopicProducts,
		Key:   prod.ID,
		Payload: map[string]any{
			"type":      "product_updated",
			"productID": prod.ID,
			"name":      prod.Name,
			"product":   &prod,
		},
	})
	return &prod, true, nil
}

// Delete removes the product if present. Lines already in carts keep
// their snapshot and are deliberately left alone.
func (r *Catalog) Delete(ctx context.Context, id string) (bool, error) {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	r.Bus.Publish(events.Event{
		Topic: events.TopicProducts,
		Key:   id,
		Payload: map[string]any{
			"type":      "product_deleted",
			"productID": id,
		},
	})
	return true, nil
}

func (r *Catalog) Get(ctx context.Context, id string) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

// List returns products in insertion order, optionally filtered by
// collection.
func (r *Catalog) List(ctx context.Context, collection string) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{}).Order("seq ASC")
	if collection != "" {
		q = q.Where("collection = ?", collection)
	}
	var items []models.Product
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Collections returns the distinct collection names in first-seen order.
func (r *Catalog) Collections(ctx context.Context) ([]string, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Order("seq ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(items))
	names := make([]string, 0, len(items))
	for _, p := range items {
		if _, ok := seen[p.Collection]; ok {
			continue
		}
		seen[p.Collection] = struct{}{}
		names = append(names, p.Collection)
	}
	return names, nil
}
