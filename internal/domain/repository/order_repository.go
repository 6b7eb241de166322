package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/internal/domain/enum"
	"github.com/sangkips/salgaderia-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// Create stores the order together with its items in one transaction,
	// assigning the next order number when OrderNumber is empty
	Create(ctx context.Context, order *entity.Order) error
	// GetWithItems returns the order with items in their original order, or nil
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// ListByDeliveryDate returns every order (with items) picked up on date (DD/MM/YYYY)
	ListByDeliveryDate(ctx context.Context, date string) ([]entity.Order, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus, sinal, restante decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
	// NextOrderNumber returns the next sequential order number
	NextOrderNumber(ctx context.Context) (string, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	DeliveryDate  string
	PaymentStatus *enum.PaymentStatus
}
