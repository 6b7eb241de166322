package request

import "github.com/shopspring/decimal"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required,min=2,max=255"`
	Category string          `json:"category" binding:"omitempty,max=50"`
	Price    decimal.Decimal `json:"price"`
	Active   *bool           `json:"active"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name     *string          `json:"name" binding:"omitempty,min=2,max=255"`
	Category *string          `json:"category" binding:"omitempty,max=50"`
	Price    *decimal.Decimal `json:"price"`
	Active   *bool            `json:"active"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
