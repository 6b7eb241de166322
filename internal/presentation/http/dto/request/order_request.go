package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one order line. Catalog items send product_id;
// manual items send name, category and unit_price.
type OrderItemRequest struct {
	ProductID *uuid.UUID       `json:"product_id"`
	Name      string           `json:"name" binding:"omitempty,max=255"`
	Category  string           `json:"category" binding:"omitempty,max=50"`
	Quantity  int              `json:"quantity" binding:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	Customer struct {
		Name  string `json:"name" binding:"required,max=255"`
		Phone string `json:"phone" binding:"omitempty,max=50"`
	} `json:"customer"`
	Delivery struct {
		Date string `json:"date" binding:"omitempty,len=10"`
		Time string `json:"time" binding:"omitempty,len=5"`
	} `json:"delivery"`
	Sinal         decimal.Decimal    `json:"sinal"`
	PaymentStatus string             `json:"payment_status" binding:"omitempty,oneof=pago pendente"`
	Notes         string             `json:"notes"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdatePaymentStatusRequest represents a payment status change
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=pago pendente"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search        string `form:"search"`
	DeliveryDate  string `form:"delivery_date"`
	PaymentStatus string `form:"payment_status"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}
