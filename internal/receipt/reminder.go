package receipt

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/pkg/textlayout"
)

// noTimeKey sorts orders without a pickup time after 23:59.
const noTimeKey = 99*60 + 99

const (
	reminderTitle     = "LEMBRETE DE PRODUCAO"
	reminderNoItems   = "Nenhum item para produzir"
	reminderNoOrders  = "Nenhum pedido para retirada"
	reminderFooterOne = "Confira os pedidos antes de embalar"
	reminderFooterTwo = "Bom trabalho!"
)

type consolidatedItem struct {
	name     string
	quantity int
}

// Reminder renders the daily production summary, 40 columns wide: the items
// to produce summed by name across all orders, then every order in pickup
// time order.
//
// The orders slice is not modified; sorting happens on a copy.
func (g *Generator) Reminder(orders []entity.Order) *Document {
	const w = textlayout.DefaultWidth
	thick := textlayout.Separator('=', w)
	thin := textlayout.Separator('-', w)
	now := g.now().In(g.loc)

	var lines []string
	add := func(l ...string) { lines = append(lines, l...) }

	add(
		thick,
		textlayout.Center(reminderTitle, w),
		thick,
		"DATA: "+now.Format("02/01/2006"),
		"ATUALIZADO EM: "+now.Format("02/01/2006 15:04:05"),
		thin,
		"ITENS A PRODUZIR:",
	)

	items, salgados := g.consolidate(orders)
	if len(items) > 0 {
		for _, it := range items {
			add(fmt.Sprintf("%-5d %s", it.quantity, it.name))
		}
	} else {
		add(textlayout.Center(reminderNoItems, w))
	}

	add(
		"",
		textlayout.LeftAlign(fmt.Sprintf("TOTAL DE SALGADOS: %d", salgados), w),
		thin,
		"PEDIDOS PARA RETIRADA HOJE:",
	)

	if len(orders) > 0 {
		for _, o := range sortByPickupTime(orders) {
			add(
				"",
				"PEDIDO: "+orderNumber(&o),
				"CLIENTE: "+orNA(o.Customer.Name),
				"HORARIO: "+orNA(o.Delivery.Time),
			)
			for _, item := range o.Items {
				add(fmt.Sprintf("  - %d %s", item.Quantity, g.displayName(item)))
			}
		}
	} else {
		add(textlayout.Center(reminderNoOrders, w))
	}

	add(
		thick,
		textlayout.Center(reminderFooterOne, w),
		textlayout.Center(reminderFooterTwo, w),
		thick,
	)

	return &Document{
		Kind:  KindReminder,
		Width: w,
		Text:  strings.Join(lines, "\n"),
	}
}

// consolidate sums quantities per display name. The result is ordered by
// descending quantity; equal quantities keep the order in which the name
// first appeared.
func (g *Generator) consolidate(orders []entity.Order) ([]consolidatedItem, int) {
	index := make(map[string]int)
	var items []consolidatedItem
	salgados := 0

	for _, o := range orders {
		for _, item := range o.Items {
			name := g.displayName(item)
			if i, ok := index[name]; ok {
				items[i].quantity += item.Quantity
			} else {
				index[name] = len(items)
				items = append(items, consolidatedItem{name: name, quantity: item.Quantity})
			}
			if item.Category.IsSalgado() {
				salgados += item.Quantity
			}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].quantity > items[j].quantity
	})
	return items, salgados
}

// sortByPickupTime returns a copy of orders sorted by delivery time. Orders
// without a valid HH:MM time go last, keeping their relative order.
func sortByPickupTime(orders []entity.Order) []entity.Order {
	sorted := slices.Clone(orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return pickupKey(sorted[i]) < pickupKey(sorted[j])
	})
	return sorted
}

func pickupKey(o entity.Order) int {
	if m, ok := minutesOfDay(o.Delivery.Time); ok {
		return m
	}
	return noTimeKey
}
