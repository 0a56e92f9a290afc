package domain

import "time"

const DefaultProductWeight = "500g"

type Product struct {
	ID          string
	Name        string
	Price       float64
	Category    string
	Image       *string
	InStock     bool
	Weight      string
	Description string
	CreatedAt   time.Time
}

// ProductPatch carries a partial product update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Category    *string
	Image       *string
	InStock     *bool
	Weight      *string
	Description *string
}

func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Category == nil && p.Image == nil &&
		p.InStock == nil && p.Weight == nil && p.Description == nil
}
