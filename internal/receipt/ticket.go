package receipt

import (
	"fmt"
	"strings"

	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/pkg/money"
	"github.com/sangkips/salgaderia-api/pkg/textlayout"
)

// Item line limits, in columns, before the subtotal column. The unit price
// variant leaves less room for the name.
const (
	ticketItemMax          = 28
	ticketItemMaxUnitPrice = 20
)

const (
	ticketPaidLabel    = "*** PEDIDO PAGO ***"
	ticketPendingLabel = "*** PAGAMENTO PENDENTE ***"
)

// Ticket renders the receipt of a single order, 35 columns wide.
//
// Items print in the order they were registered. Store settings fields left
// empty fall back to the entity defaults.
func (g *Generator) Ticket(order *entity.Order, settings *entity.StoreSettings) (*Document, error) {
	if order == nil {
		return nil, ErrMissingOrder
	}
	if settings == nil {
		return nil, ErrMissingSettings
	}

	const w = textlayout.TicketWidth
	s := settings.WithFallbacks()
	thick := textlayout.Separator('=', w)
	thin := textlayout.Separator('-', w)

	var lines []string
	add := func(l ...string) { lines = append(lines, l...) }

	// Header
	add(
		textlayout.Center(s.Name, w),
		textlayout.Center(s.Phone, w),
		thick,
		textlayout.Center(strings.ToUpper(s.TicketTitle), w),
		textlayout.Center(s.TicketSubtitle, w),
		thin,
	)

	// Order info
	add(
		"PEDIDO: "+orderNumber(order),
		"EMISSAO: "+g.emission(order),
		"ATENDENTE: "+orNA(order.CreatedBy.Name),
		thin,
	)

	// Customer and pickup
	add(
		"CLIENTE: "+orNA(order.Customer.Name),
		"TELEFONE: "+orNA(order.Customer.Phone),
		g.deliveryLine(order.Delivery),
		thin,
	)

	// Items
	limit := ticketItemMax
	if s.PrintUnitPrice {
		limit = ticketItemMaxUnitPrice
		add(textlayout.LeftAlign("QTD.ITEM (VL.UNIT) / TOTAL R$", w))
	} else {
		add(textlayout.TwoColumns("QTD.ITEM", "TOTAL R$", w))
	}

	salgados := 0
	for _, item := range order.Items {
		line := fmt.Sprintf("%dx %s", item.Quantity, g.displayName(item))
		if s.PrintUnitPrice && !item.IsManual {
			line += " (" + money.FormatBRL(item.UnitPrice) + ")"
		}
		add(textlayout.TwoColumns(textlayout.Truncate(line, limit), money.FormatBRL(item.Subtotal), w))

		if item.Category.IsSalgado() {
			salgados += item.Quantity
		}
	}

	if salgados > 0 {
		add(thin, textlayout.LeftAlign(fmt.Sprintf("TOTAL DE SALGADOS: %d", salgados), w))
	}

	// Totals
	add(
		thick,
		textlayout.RightAlign("TOTAL: "+money.FormatBRL(order.Total), w),
		textlayout.RightAlign("SINAL: "+money.FormatBRL(order.Sinal), w),
		textlayout.RightAlign("RESTANTE: "+money.FormatBRL(order.Restante), w),
		thin,
	)
	if order.PaymentStatus.IsPaid() {
		add(textlayout.Center(ticketPaidLabel, w))
	} else {
		add(textlayout.Center(ticketPendingLabel, w))
	}

	// Footer
	add(thick, textlayout.Center(s.FooterMessage, w), "", "")

	return &Document{
		Kind:  KindTicket,
		Width: w,
		Text:  strings.Join(lines, "\n"),
	}, nil
}

// emission is the order creation time, or now for orders not saved yet.
func (g *Generator) emission(order *entity.Order) string {
	t := order.CreatedAt
	if t.IsZero() {
		t = g.now()
	}
	return t.In(g.loc).Format("02/01/2006 15:04")
}

func (g *Generator) deliveryLine(d entity.OrderDelivery) string {
	date := orNA(d.Date)
	if weekday, ok := weekdayName(d.Date, g.loc); ok {
		date += " " + weekday
	}
	return "RETIRADA:" + date + " as " + orNA(d.Time)
}
