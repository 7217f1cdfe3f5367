package domain

import "time"

type Product struct {
	ID        string    `json:"_id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Photo     string    `json:"photo" bson:"photo"`
	Price     float64   `json:"price" bson:"price"`
	Stock     int       `json:"stock" bson:"stock"`
	Category  string    `json:"category" bson:"category"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (p Product) Created() time.Time { return p.CreatedAt }

type NewProduct struct {
	Name     string  `json:"name" validate:"required"`
	Photo    string  `json:"photo" validate:"required"`
	Price    float64 `json:"price" validate:"gt=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
	Category string  `json:"category" validate:"required"`
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name     *string  `json:"name,omitempty"`
	Photo    *string  `json:"photo,omitempty"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock    *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Category *string  `json:"category,omitempty"`
}

func (p ProductPatch) Apply(dst *Product) {
	if p.Name != nil && *p.Name != "" {
		dst.Name = *p.Name
	}
	if p.Photo != nil && *p.Photo != "" {
		dst.Photo = *p.Photo
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Stock != nil {
		dst.Stock = *p.Stock
	}
	if p.Category != nil && *p.Category != "" {
		dst.Category = *p.Category
	}
}
