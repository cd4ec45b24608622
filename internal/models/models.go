package models

// Product is a catalog entry. Money lives in integer centavos so totals
// never accumulate floating-point error.
type Product struct {
	ID          string   `gorm:"primaryKey"               json:"id"`
	Seq         int64    `gorm:"uniqueIndex;not null"     json:"-"`
	Name        string   `gorm:"not null"                 json:"name"`
	Collection  string   `gorm:"not null;index"           json:"collection"`
	Description string   `gorm:"not null"                 json:"description"`
	PriceCents  int64    `gorm:"not null"                 json:"price_cents"`
	Sizes       []string `gorm:"serializer:json;not null" json:"sizes"`
	Images      []string `gorm:"serializer:json;not null" json:"images"`
}

// CartLine is one cart entry, at most one per (cart, product, size).
// The Product* columns are a snapshot taken when the line was created:
// later catalog edits or deletes do not touch lines already in a cart.
type CartLine struct {
	ID                uint   `gorm:"primaryKey"                          json:"id"`
	CartID            string `gorm:"index:idx_cart_line,unique;not null" json:"-"`
	ProductID         string `gorm:"index:idx_cart_line,unique;not null" json:"product_id"`
	Size              string `gorm:"index:idx_cart_line,unique;not null" json:"size"`
	Quantity          int    `gorm:"not null"                            json:"quantity"`
	ProductName       string `gorm:"not null"                            json:"product_name"`
	ProductCollection string `gorm:"not null"                            json:"product_collection"`
	ProductPriceCents int64  `gorm:"not null"                            json:"product_price_cents"`
	ProductImage      string `json:"product_image"`
}

// SubtotalCents is the line subtotal at the snapshotted unit price.
func (l CartLine) SubtotalCents() int64 {
	return l.ProductPriceCents * int64(l.Quantity)
}
