package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/internal/domain/enum"
	"github.com/sangkips/salgaderia-api/internal/domain/repository"
	"github.com/sangkips/salgaderia-api/internal/logging"
	"github.com/sangkips/salgaderia-api/pkg/apperror"
	"github.com/sangkips/salgaderia-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeliveryDateLayout is the pickup date format typed at the counter
const DeliveryDateLayout = "02/01/2006"

// OrderService handles order-related operations
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// OrderItemInput is one requested line. Catalog lines set ProductID and may
// override the price; manual lines set Name, Category and UnitPrice.
type OrderItemInput struct {
	ProductID *uuid.UUID
	Name      string
	Category  string
	Quantity  int
	UnitPrice *decimal.Decimal
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	OperatorID    *uuid.UUID
	OperatorName  string
	CustomerName  string
	CustomerPhone string
	DeliveryDate  string
	DeliveryTime  string
	Sinal         decimal.Decimal
	PaymentStatus string
	Notes         string
	Items         []OrderItemInput
}

// CreateOrder validates the input, prices every item and stores the order
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	fieldErrors := validateOrderInput(input)

	status, err := enum.ParsePaymentStatus(input.PaymentStatus)
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "payment_status", Message: "Must be pago or pendente"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	products, err := s.loadProducts(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	total := decimal.Zero
	for i, in := range input.Items {
		item, fieldErr := buildItem(i, in, products)
		if fieldErr != nil {
			fieldErrors = append(fieldErrors, *fieldErr)
			continue
		}
		total = total.Add(item.Subtotal)
		items = append(items, item)
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	deposit := input.Sinal.Round(2)
	if deposit.GreaterThan(total) {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "sinal", Message: "Deposit cannot exceed the order total"}})
	}
	sinal := settledDeposit(status, total, deposit)

	order := &entity.Order{
		CreatedBy: entity.OrderOperator{ID: input.OperatorID, Name: strings.TrimSpace(input.OperatorName)},
		Customer: entity.OrderCustomer{
			Name:  strings.TrimSpace(input.CustomerName),
			Phone: strings.TrimSpace(input.CustomerPhone),
		},
		Delivery: entity.OrderDelivery{
			Date: strings.TrimSpace(input.DeliveryDate),
			Time: strings.TrimSpace(input.DeliveryTime),
		},
		Total:         total,
		Sinal:         sinal,
		Deposit:       deposit,
		Restante:      total.Sub(sinal),
		PaymentStatus: status,
		Notes:         strings.TrimSpace(input.Notes),
		Items:         items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	log := logging.Get("orders")
	log.Info().
		Str("order_number", order.OrderNumber).
		Str("total", total.StringFixed(2)).
		Int("items", len(items)).
		Msg("Order created")

	return order, nil
}

// settledDeposit is the sinal shown for an order: the whole total once paid.
func settledDeposit(status enum.PaymentStatus, total, deposit decimal.Decimal) decimal.Decimal {
	if status.IsPaid() {
		return total
	}
	return deposit
}

func validateOrderInput(input *CreateOrderInput) []apperror.FieldError {
	var fieldErrors []apperror.FieldError

	if strings.TrimSpace(input.CustomerName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer.name", Message: "Customer name is required"})
	}
	if d := strings.TrimSpace(input.DeliveryDate); d != "" {
		if _, err := time.Parse(DeliveryDateLayout, d); err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "delivery.date", Message: "Use DD/MM/YYYY"})
		}
	}
	if t := strings.TrimSpace(input.DeliveryTime); t != "" {
		if _, err := time.Parse("15:04", t); err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "delivery.time", Message: "Use HH:MM"})
		}
	}
	if input.Sinal.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "sinal", Message: "Deposit cannot be negative"})
	}
	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "At least one item is required"})
	}
	return fieldErrors
}

func (s *OrderService) loadProducts(ctx context.Context, items []OrderItemInput) (map[uuid.UUID]entity.Product, error) {
	var ids []uuid.UUID
	for _, in := range items {
		if in.ProductID != nil {
			ids = append(ids, *in.ProductID)
		}
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

func buildItem(i int, in OrderItemInput, products map[uuid.UUID]entity.Product) (entity.OrderItem, *apperror.FieldError) {
	field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }

	if in.Quantity <= 0 {
		return entity.OrderItem{}, &apperror.FieldError{Field: field("quantity"), Message: "Quantity must be positive"}
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return entity.OrderItem{}, &apperror.FieldError{Field: field("unit_price"), Message: "Price cannot be negative"}
	}

	item := entity.OrderItem{Quantity: in.Quantity}

	if in.ProductID != nil {
		product, ok := products[*in.ProductID]
		if !ok || !product.Active || product.DeletedAt.Valid {
			return entity.OrderItem{}, &apperror.FieldError{Field: field("product_id"), Message: "Product not available"}
		}
		id := product.ID
		item.ProductID = &id
		item.Name = product.Name
		item.Category = product.Category
		item.UnitPrice = product.Price
	} else {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return entity.OrderItem{}, &apperror.FieldError{Field: field("name"), Message: "Manual items need a name"}
		}
		if in.UnitPrice == nil {
			return entity.OrderItem{}, &apperror.FieldError{Field: field("unit_price"), Message: "Manual items need a price"}
		}
		category, ok := enum.ParseCategory(in.Category)
		if !ok {
			return entity.OrderItem{}, &apperror.FieldError{Field: field("category"), Message: "Unknown category"}
		}
		item.IsManual = true
		item.Name = name
		item.Category = category
	}

	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	item.UnitPrice = item.UnitPrice.Round(2)
	item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))).Round(2)
	return item, nil
}

// GetOrder returns an order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns paginated orders
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdatePaymentStatus marks an order paid or pending. Marking it paid
// settles the balance; marking it pending again restores the deposit taken
// when the order was placed.
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*entity.Order, error) {
	status, err := enum.ParsePaymentStatus(rawStatus)
	if err != nil || strings.TrimSpace(rawStatus) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "payment_status", Message: "Must be pago or pendente"}})
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	sinal := settledDeposit(status, order.Total, order.Deposit)
	restante := order.Total.Sub(sinal)

	if err := s.orderRepo.UpdatePaymentStatus(ctx, id, status, sinal, restante); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Order")
		}
		return nil, err
	}

	order.PaymentStatus = status
	order.Sinal = sinal
	order.Restante = restante
	return order, nil
}

// DeleteOrder deletes an order and its items
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetOrder(ctx, id); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}
