package repository

import (
	"strings"

	"github.com/sangkips/salgaderia-api/pkg/pagination"
	"gorm.io/gorm"
)

// Paginate returns a GORM scope applying the page window of p. A nil p
// falls back to the first default page.
func Paginate(p *pagination.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p == nil {
			p = &pagination.PaginationParams{}
		}
		p.Validate()
		return db.Offset(p.Offset()).Limit(p.PerPage)
	}
}

// Search returns a GORM scope matching term case-insensitively against any
// of the given columns. An empty term matches everything.
func Search(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}

		conds := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			conds[i] = col + " ILIKE ?"
			args[i] = "%" + term + "%"
		}
		return db.Where(strings.Join(conds, " OR "), args...)
	}
}
