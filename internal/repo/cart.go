package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dojodoskages/storefront/internal/events"
	"github.com/dojodoskages/storefront/internal/models"
)

// Cart owns the cart lines of every visitor. Lines are keyed by
// (cart, product, size); adding an existing key bumps the quantity
// instead of duplicating the line.
type Cart struct {
	DB  *gorm.DB
	Bus *events.Bus
}

func NewCart(db *gorm.DB, bus *events.Bus) *Cart {
	return &Cart{DB: db, Bus: bus}
}

// Add puts one unit of (product, size) into the cart. The first add for
// a key snapshots the product; later catalog mutations do not reach
// lines already in the cart.
func (r *Cart) Add(ctx context.Context, cartID string, prod *models.Product, size string) (*models.CartLine, error) {
	var line models.CartLine
	tx := r.DB.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND size = ?", cartID, prod.ID, size).
		First(&line)
	if tx.Error == nil {
		line.Quantity++
		if err := r.DB.WithContext(ctx).Save(&line).Error; err != nil {
			return nil, err
		}
		r.publish(cartID, "cart_item_added", prod.ID, size, line.Quantity)
		return &line, nil
	}
	if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, tx.Error
	}

	image := ""
	if len(prod.Images) > 0 {
		image = prod.Images[0]
	}
	line = models.CartLine{
		CartID:            cartID,
		ProductID:         prod.ID,
		Size:              size,
		Quantity:          1,
		ProductName:       prod.Name,
		ProductCollection: prod.Collection,
		ProductPriceCents: prod.PriceCents,
		ProductImage:      image,
	}
	if err := r.DB.WithContext(ctx).Create(&line).Error; err != nil {
		return nil, err
	}
	r.publish(cartID, "cart_item_added", prod.ID, size, line.Quantity)
	return &line, nil
}

// SetQuantity sets the line quantity absolutely. A quantity of zero or
// less behaves exactly like Remove. An absent line is a no-op.
func (r *Cart) SetQuantity(ctx context.Context, cartID, productID, size string, quantity int) error {
	if quantity <= 0 {
		return r.Remove(ctx, cartID, productID, size)
	}

	var line models.CartLine
	err := r.DB.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND size = ?", cartID, productID, size).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	line.Quantity = quantity
	if err := r.DB.WithContext(ctx).Save(&line).Error; err != nil {
		return err
	}
	r.publish(cartID, "cart_quantity_set", productID, size, quantity)
	return nil
}

// Remove deletes the matching line if present.
func (r *Cart) Remove(ctx context.Context, cartID, productID, size string) error {
	res := r.DB.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND size = ?", cartID, productID, size).
		Delete(&models.CartLine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		r.publish(cartID, "cart_item_deleted", productID, size, 0)
	}
	return nil
}

// Clear empties the cart.
func (r *Cart) Clear(ctx context.Context, cartID string) error {
	if err := r.DB.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartLine{}).Error; err != nil {
		return err
	}
	r.Bus.Publish(events.Event{
		Topic: events.TopicCarts,
		Key:   cartID,
		Payload: map[string]any{
			"type":   "cart_cleared",
			"cartID": cartID,
		},
	})
	return nil
}

// Get returns the cart lines in insertion order.
func (r *Cart) Get(ctx context.Context, cartID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.DB.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// TotalCents sums price x quantity over the given lines in integer
// centavos, so removing a line restores the prior total exactly.
func TotalCents(lines []models.CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.SubtotalCents()
	}
	return total
}

func (r *Cart) publish(cartID, typ, productID, size string, quantity int) {
	payload := map[string]any{
		"type":      typ,
		"cartID":    cartID,
		"productID": productID,
		"size":      size,
	}
	if quantity > 0 {
		payload["quantity"] = quantity
	}
	r.Bus.Publish(events.Event{Topic: events.TopicCarts, Key: cartID, Payload: payload})
}
