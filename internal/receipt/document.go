// Package receipt renders orders into the fixed-width plain-text documents
// handed to thermal printers and messaging apps: the single-order ticket and
// the daily production reminder.
//
// Generation is pure. A Generator reads its inputs, never mutates them, and
// performs no I/O; delivering the text is left to pkg/printer.
package receipt

import (
	"errors"
	"strings"
	"time"

	"github.com/sangkips/salgaderia-api/internal/domain/entity"
)

var (
	// ErrMissingOrder is returned when a ticket is requested without an order.
	ErrMissingOrder = errors.New("receipt: order is required")
	// ErrMissingSettings is returned when a ticket is requested without store settings.
	ErrMissingSettings = errors.New("receipt: store settings are required")
)

// Kind tells which generator produced a Document.
type Kind string

const (
	KindTicket   Kind = "ticket"
	KindReminder Kind = "reminder"
)

// Document is a rendered, newline-delimited text meant for a monospaced
// surface exactly Width columns wide.
type Document struct {
	Kind  Kind   `json:"kind"`
	Width int    `json:"width"`
	Text  string `json:"text"`
}

// Lines splits the document text into its lines.
func (d *Document) Lines() []string {
	return strings.Split(d.Text, "\n")
}

// Generator builds tickets and reminders.
type Generator struct {
	catalog Catalog
	now     func() time.Time
	loc     *time.Location
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLocation sets the timezone used to print timestamps.
func WithLocation(loc *time.Location) Option {
	return func(g *Generator) {
		if loc != nil {
			g.loc = loc
		}
	}
}

// NewGenerator creates a Generator resolving product names through catalog.
// A nil catalog resolves nothing and every item prints its own name.
func NewGenerator(catalog Catalog, opts ...Option) *Generator {
	if catalog == nil {
		catalog = MapCatalog{}
	}
	g := &Generator{
		catalog: catalog,
		now:     time.Now,
		loc:     time.Local,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// displayName resolves the name printed for an item: manual items carry their
// own name, catalog items use the catalog and fall back to the stored name.
func (g *Generator) displayName(item entity.OrderItem) string {
	if item.IsManual || item.ProductID == nil {
		return item.Name
	}
	if name, ok := g.catalog.ProductName(*item.ProductID); ok && name != "" {
		return name
	}
	return item.Name
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func orderNumber(o *entity.Order) string {
	if o.OrderNumber == "" {
		return "N/A"
	}
	return "#" + o.OrderNumber
}
