package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/internal/domain/enum"
	domainRepo "github.com/sangkips/salgaderia-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderNumberLock is the advisory lock key serializing order number allocation
const orderNumberLock = 7_310_001

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.OrderNumber == "" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", orderNumberLock).Error; err != nil {
				return err
			}
			next, err := nextOrderNumber(tx)
			if err != nil {
				return err
			}
			order.OrderNumber = next
		}
		for i := range order.Items {
			order.Items[i].Position = i
		}
		return tx.Create(order).Error
	})
}

func (r *orderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{}).
		Scopes(Search(params.Search, "order_number", "customer_name", "customer_phone"))

	if params.DeliveryDate != "" {
		query = query.Where("delivery_date = ?", params.DeliveryDate)
	}

	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(Paginate(params.Pagination)).
		Preload("Items", orderedItems).
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) ListByDeliveryDate(ctx context.Context, date string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("delivery_date = ?", date).
		Preload("Items", orderedItems).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus, sinal, restante decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": status,
			"sinal":          sinal,
			"restante":       restante,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, "id = ?", id).Error
	})
}

func (r *orderRepository) NextOrderNumber(ctx context.Context) (string, error) {
	return nextOrderNumber(r.db.WithContext(ctx))
}

// nextOrderNumber looks at soft deleted orders too, numbers are never reused
func nextOrderNumber(db *gorm.DB) (string, error) {
	var last int64
	err := db.Unscoped().Model(&entity.Order{}).
		Where("order_number ~ '^[0-9]+$'").
		Select("COALESCE(MAX(CAST(order_number AS BIGINT)), 0)").
		Scan(&last).Error
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(last+1, 10), nil
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
