package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salgaderia-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderCustomer identifies who placed the order
type OrderCustomer struct {
	Name  string `gorm:"size:255" json:"name"`
	Phone string `gorm:"size:50" json:"phone"`
}

// OrderDelivery holds the pickup date (DD/MM/YYYY) and time (HH:MM) as typed
// at the counter
type OrderDelivery struct {
	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`
}

// OrderOperator is the logged-in operator who registered the order
type OrderOperator struct {
	ID   *uuid.UUID `gorm:"type:uuid" json:"id,omitempty"`
	Name string     `gorm:"size:255" json:"name"`
}

// Order represents a customer order taken at the counter or by phone
type Order struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber   string             `gorm:"size:50;uniqueIndex;not null" json:"order_number"`
	CreatedBy     OrderOperator      `gorm:"embedded;embeddedPrefix:created_by_" json:"created_by"`
	Customer      OrderCustomer      `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Delivery      OrderDelivery      `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery"`
	Total         decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	Sinal         decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0" json:"sinal"`
	// Deposit is the amount taken when the order was placed. Sinal shows the
	// full total while the order is paid and falls back to Deposit otherwise.
	Deposit       decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0" json:"deposit"`
	Restante      decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0" json:"restante"`
	PaymentStatus enum.PaymentStatus `gorm:"size:20;not null;default:'pendente'" json:"payment_status"`
	Notes         string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. Catalog items reference a product;
// manual items carry their own name and have no ProductID.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID *uuid.UUID      `gorm:"type:uuid;index" json:"product_id,omitempty"`
	IsManual  bool            `gorm:"default:false" json:"is_manual"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Category  enum.Category   `gorm:"size:50" json:"category"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"subtotal"`
	Position  int             `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
