package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/internal/receipt"
	"gopkg.in/yaml.v3"
)

// storeFile is the YAML layout of --settings.
type storeFile struct {
	Store struct {
		Name           string `yaml:"name"`
		Phone          string `yaml:"phone"`
		TicketTitle    string `yaml:"ticket_title"`
		TicketSubtitle string `yaml:"ticket_subtitle"`
		FooterMessage  string `yaml:"footer_message"`
		PrintUnitPrice bool   `yaml:"print_unit_price"`
	} `yaml:"store"`
	Products []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"products"`
}

// loadStore reads store settings and the catalog. An empty path yields the
// fallback settings and an empty catalog.
func loadStore(path string) (*entity.StoreSettings, receipt.MapCatalog, error) {
	settings := entity.StoreSettings{}.WithFallbacks()
	catalog := receipt.MapCatalog{}
	if path == "" {
		return &settings, catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}

	var f storeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	settings = entity.StoreSettings{
		Name:           strings.TrimSpace(f.Store.Name),
		Phone:          strings.TrimSpace(f.Store.Phone),
		TicketTitle:    strings.TrimSpace(f.Store.TicketTitle),
		TicketSubtitle: strings.TrimSpace(f.Store.TicketSubtitle),
		FooterMessage:  strings.TrimSpace(f.Store.FooterMessage),
		PrintUnitPrice: f.Store.PrintUnitPrice,
	}.WithFallbacks()

	for i, p := range f.Products {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("product %d: invalid id %q", i+1, p.ID)
		}
		catalog[id] = p.Name
	}
	return &settings, catalog, nil
}

// loadOrders reads a JSON file holding either one order or an array of
// orders. "-" reads standard input.
func loadOrders(path string, stdin io.Reader) ([]entity.Order, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading orders: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var orders []entity.Order
		if err := json.Unmarshal(data, &orders); err != nil {
			return nil, fmt.Errorf("parsing orders: %w", err)
		}
		return orders, nil
	}

	var order entity.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("parsing order: %w", err)
	}
	return []entity.Order{order}, nil
}
