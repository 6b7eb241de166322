package routes_test

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/internal/domain/enum"
	"github.com/sangkips/salgaderia-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]entity.Order
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]entity.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.OrderNumber == "" {
		r.seq++
		order.OrderNumber = strconv.Itoa(r.seq)
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		order.Items[i].Position = i
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *fakeOrderRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *fakeOrderRepo) List(_ context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Order
	for _, o := range r.orders {
		if params.DeliveryDate != "" && o.Delivery.Date != params.DeliveryDate {
			continue
		}
		if params.PaymentStatus != nil && o.PaymentStatus != *params.PaymentStatus {
			continue
		}
		if params.Search != "" && !strings.Contains(o.Customer.Name, params.Search) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) ListByDeliveryDate(_ context.Context, date string) ([]entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Order
	for _, o := range r.orders {
		if o.Delivery.Date == date {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out, nil
}

func (r *fakeOrderRepo) UpdatePaymentStatus(_ context.Context, id uuid.UUID, status enum.PaymentStatus, sinal, restante decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.PaymentStatus = status
	o.Sinal = sinal
	o.Restante = restante
	r.orders[id] = o
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) NextOrderNumber(context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strconv.Itoa(r.seq + 1), nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]entity.Product
	order    []uuid.UUID
}

func newFakeProductRepo(products ...entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uuid.UUID]entity.Product)}
	for i := range products {
		_ = r.Create(context.Background(), &products[i])
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakeProductRepo) CreateBatch(ctx context.Context, products []entity.Product) error {
	for i := range products {
		if err := r.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.DeletedAt.Valid {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Product{}
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.products[id]
	p.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	r.products[id] = p
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Product
	for _, id := range r.order {
		p := r.products[id]
		if p.DeletedAt.Valid || (params.ActiveOnly && !p.Active) {
			continue
		}
		if params.Category != nil && p.Category != *params.Category {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

type fakeSettingsRepo struct {
	settings *entity.StoreSettings
	saves    int
}

func (r *fakeSettingsRepo) Get(context.Context) (*entity.StoreSettings, error) {
	if r.settings == nil {
		return nil, nil
	}
	s := *r.settings
	return &s, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, s *entity.StoreSettings) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	saved := *s
	r.settings = &saved
	r.saves++
	return nil
}

type fakeOperatorRepo struct {
	byEmail    map[string]entity.Operator
	lastLogins int
}

func newFakeOperatorRepo(ops ...entity.Operator) *fakeOperatorRepo {
	r := &fakeOperatorRepo{byEmail: make(map[string]entity.Operator)}
	for _, op := range ops {
		if op.ID == uuid.Nil {
			op.ID = uuid.New()
		}
		r.byEmail[op.Email] = op
	}
	return r
}

func (r *fakeOperatorRepo) Create(_ context.Context, op *entity.Operator) error {
	if op.ID == uuid.Nil {
		op.ID = uuid.New()
	}
	r.byEmail[op.Email] = *op
	return nil
}

func (r *fakeOperatorRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Operator, error) {
	for _, op := range r.byEmail {
		if op.ID == id {
			return &op, nil
		}
	}
	return nil, nil
}

func (r *fakeOperatorRepo) GetByEmail(_ context.Context, email string) (*entity.Operator, error) {
	op, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return &op, nil
}

func (r *fakeOperatorRepo) UpdateLastLogin(context.Context, uuid.UUID) error {
	r.lastLogins++
	return nil
}
