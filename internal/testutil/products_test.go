package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"meatshop/internal/domain"
)

func TestApplyProductPatch_OnlyProvidedFields(t *testing.T) {
	p := domain.Product{
		ID:          "p1",
		Name:        "Chicken Curry Cut",
		Price:       250,
		Category:    "chicken",
		InStock:     true,
		Weight:      domain.DefaultProductWeight,
		Description: "fresh",
	}

	price := 275.5
	inStock := false
	ApplyProductPatch(&p, domain.ProductPatch{Price: &price, InStock: &inStock})

	assert.Equal(t, "Chicken Curry Cut", p.Name)
	assert.Equal(t, 275.5, p.Price)
	assert.False(t, p.InStock)
	assert.Equal(t, "chicken", p.Category)
	assert.Equal(t, "500g", p.Weight)
	assert.Equal(t, "fresh", p.Description)
	assert.Nil(t, p.Image)
}

func TestApplyProductPatch_ImageIsCopied(t *testing.T) {
	p := domain.Product{}
	img := "data:image/png;base64,AAAA"
	ApplyProductPatch(&p, domain.ProductPatch{Image: &img})

	img = "changed"
	assert.Equal(t, "data:image/png;base64,AAAA", *p.Image)
}
