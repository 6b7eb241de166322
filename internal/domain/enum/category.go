package enum

import "strings"

// Category is the product family an order item belongs to
type Category string

const (
	CategoryFritos  Category = "fritos"
	CategoryAssados Category = "assados"
	CategoryRevenda Category = "revenda"
	CategoryDoces   Category = "doces"
	CategoryBolos   Category = "bolos"
	CategoryBebidas Category = "bebidas"
	CategoryOutros  Category = "outros"
)

// IsSalgado reports whether items of this category count towards the
// savory-snack total printed on tickets and reminders
func (c Category) IsSalgado() bool {
	switch Category(strings.ToLower(string(c))) {
	case CategoryFritos, CategoryAssados, CategoryRevenda:
		return true
	}
	return false
}

// Categories lists every known category in display order
func Categories() []Category {
	return []Category{
		CategoryFritos,
		CategoryAssados,
		CategoryRevenda,
		CategoryDoces,
		CategoryBolos,
		CategoryBebidas,
		CategoryOutros,
	}
}

// ParseCategory normalizes user input into a known category. Empty input
// maps to CategoryOutros.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CategoryOutros, true
	}
	for _, known := range Categories() {
		if c == known {
			return c, true
		}
	}
	return "", false
}
