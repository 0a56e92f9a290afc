package testutil

import "meatshop/internal/domain"

// ApplyProductPatch mirrors the repository UPDATE for in-memory fakes: only
// non-nil patch fields are copied onto p.
func ApplyProductPatch(p *domain.Product, patch domain.ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		img := *patch.Image
		p.Image = &img
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.Weight != nil {
		p.Weight = *patch.Weight
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
}
