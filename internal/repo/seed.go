package repo

import (
	"context"

	"github.com/dojodoskages/storefront/internal/models"
)

// SeedDemo loads the demo catalog used by the showcase deployment.
func (r *Catalog) SeedDemo(ctx context.Context) error {
	demo := []models.Product{
		{
			Name:        "Camiseta Samurai Spirit",
			Collection:  "Bushido",
			PriceCents:  12990,
			Description: "Camiseta premium com estampa exclusiva de samurai. Tecido 100% algodão penteado.",
			Sizes:       []string{"P", "M", "G", "GG"},
			Images:      []string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500"},
		},
		{
			Name:        "Moletom Kage Shadow",
			Collection:  "Kage",
			PriceCents:  24990,
			Description: "Moletom oversized com capuz. Design minimalista com detalhes bordados.",
			Sizes:       []string{"P", "M", "G", "GG"},
			Images:      []string{"https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=500"},
		},
		{
			Name:        "Calça Ninja Tech",
			Collection:  "Shinobi",
			PriceCents:  19990,
			Description: "Calça cargo com bolsos funcionais. Tecido ripstop resistente.",
			Sizes:       []string{"38", "40", "42", "44"},
			Images:      []string{"https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=500"},
		},
		{
			Name:        "Jaqueta Ronin",
			Collection:  "Bushido",
			PriceCents:  39990,
			Description: "Jaqueta estilo bomber com forro interno. Acabamento premium.",
			Sizes:       []string{"P", "M", "G", "GG"},
			Images:      []string{"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=500"},
		},
	}

	for i := range demo {
		if _, err := r.Create(ctx, &demo[i]); err != nil {
			return err
		}
	}
	return nil
}
