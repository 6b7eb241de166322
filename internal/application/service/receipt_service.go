package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/internal/domain/repository"
	"github.com/sangkips/salgaderia-api/internal/receipt"
	"github.com/sangkips/salgaderia-api/pkg/apperror"
	"github.com/sangkips/salgaderia-api/pkg/printer"
)

// ReceiptService renders tickets and production reminders and delivers them
// to the printer or to WhatsApp.
type ReceiptService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	settings    *SettingsService
	printer     *PrinterService
	loc         *time.Location
	now         func() time.Time
}

// NewReceiptService creates a new receipt service. Timestamps and "today"
// are taken in loc.
func NewReceiptService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	settings *SettingsService,
	printerService *PrinterService,
	loc *time.Location,
) *ReceiptService {
	if loc == nil {
		loc = time.Local
	}
	return &ReceiptService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		settings:    settings,
		printer:     printerService,
		loc:         loc,
		now:         time.Now,
	}
}

// WithClock replaces the wall clock used for "today" and timestamps
func (s *ReceiptService) WithClock(now func() time.Time) *ReceiptService {
	if now != nil {
		s.now = now
	}
	return s
}

// ShareLink is a WhatsApp deep link carrying a rendered document
type ShareLink struct {
	URL   string `json:"url"`
	Phone string `json:"phone,omitempty"`
	Text  string `json:"text"`
}

// Ticket renders the ticket of one order
func (s *ReceiptService) Ticket(ctx context.Context, orderID uuid.UUID) (*receipt.Document, *entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, apperror.NewNotFoundError("Order")
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, nil, err
	}

	gen, err := s.generator(ctx, []entity.Order{*order})
	if err != nil {
		return nil, nil, err
	}

	doc, err := gen.Ticket(order, settings)
	if err != nil {
		return nil, nil, apperror.NewUnprocessableError(err.Error())
	}
	return doc, order, nil
}

// PrintTicket renders and prints the ticket of one order
func (s *ReceiptService) PrintTicket(ctx context.Context, orderID uuid.UUID) (*receipt.Document, error) {
	doc, _, err := s.Ticket(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.printer.Print(ctx, doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// ShareTicket builds a WhatsApp link sending the ticket to the customer
func (s *ReceiptService) ShareTicket(ctx context.Context, orderID uuid.UUID) (*ShareLink, error) {
	doc, order, err := s.Ticket(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return shareLink(order.Customer.Phone, doc), nil
}

// Reminder renders the production reminder for the orders picked up on
// date (DD/MM/YYYY). An empty date means today.
func (s *ReceiptService) Reminder(ctx context.Context, date string) (*receipt.Document, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = receipt.FormatDeliveryDate(s.now().In(s.loc))
	} else if _, err := time.Parse(DeliveryDateLayout, date); err != nil {
		return nil, apperror.NewBadRequestError("Invalid date, use DD/MM/YYYY")
	}

	orders, err := s.orderRepo.ListByDeliveryDate(ctx, date)
	if err != nil {
		return nil, err
	}

	gen, err := s.generator(ctx, orders)
	if err != nil {
		return nil, err
	}
	return gen.Reminder(orders), nil
}

// PrintReminder renders and prints the production reminder
func (s *ReceiptService) PrintReminder(ctx context.Context, date string) (*receipt.Document, error) {
	doc, err := s.Reminder(ctx, date)
	if err != nil {
		return nil, err
	}
	if err := s.printer.Print(ctx, doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// ShareReminder builds a WhatsApp link with the reminder and no recipient
func (s *ReceiptService) ShareReminder(ctx context.Context, date string) (*ShareLink, error) {
	doc, err := s.Reminder(ctx, date)
	if err != nil {
		return nil, err
	}
	return shareLink("", doc), nil
}

// generator builds a Generator whose catalog holds every product referenced
// by the given orders, fetched in one query
func (s *ReceiptService) generator(ctx context.Context, orders []entity.Order) (*receipt.Generator, error) {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, o := range orders {
		for _, item := range o.Items {
			if item.ProductID == nil {
				continue
			}
			if _, ok := seen[*item.ProductID]; ok {
				continue
			}
			seen[*item.ProductID] = struct{}{}
			ids = append(ids, *item.ProductID)
		}
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return receipt.NewGenerator(
		receipt.NewMapCatalog(products),
		receipt.WithClock(s.now),
		receipt.WithLocation(s.loc),
	), nil
}

func shareLink(phone string, doc *receipt.Document) *ShareLink {
	text := printer.Monospace(doc.Text)
	return &ShareLink{
		URL:   printer.WhatsAppLink(phone, text),
		Phone: phone,
		Text:  text,
	}
}
