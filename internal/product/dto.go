package product

import (
	"time"

	"meatshop/internal/domain"
)

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Price       *float64 `json:"price" validate:"required,gte=0,lte=99999999.99"`
	Category    string   `json:"category" validate:"required,max=100"`
	Image       *string  `json:"image"`
	InStock     *bool    `json:"inStock"`
	Weight      *string  `json:"weight" validate:"omitempty,max=50"`
	Description *string  `json:"description" validate:"omitempty,max=16000"`
}

// UpdateProductRequest is a partial update; absent and null fields are ignored.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=255"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0,lte=99999999.99"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Image       *string  `json:"image"`
	InStock     *bool    `json:"inStock"`
	Weight      *string  `json:"weight" validate:"omitempty,max=50"`
	Description *string  `json:"description" validate:"omitempty,max=16000"`
}

type ProductDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       *string   `json:"image"`
	InStock     bool      `json:"inStock"`
	Weight      string    `json:"weight"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r CreateProductRequest) toDomain() domain.Product {
	p := domain.Product{
		Name:     r.Name,
		Price:    *r.Price,
		Category: r.Category,
		Image:    r.Image,
		InStock:  true,
		Weight:   domain.DefaultProductWeight,
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	if r.Weight != nil {
		p.Weight = *r.Weight
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	return p
}

func (r UpdateProductRequest) toPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
		InStock:     r.InStock,
		Weight:      r.Weight,
		Description: r.Description,
	}
}

func toDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		InStock:     p.InStock,
		Weight:      p.Weight,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}
