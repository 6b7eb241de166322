package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fallbacks used whenever a store setting was never filled in
const (
	DefaultStoreName      = "Salgaderia"
	DefaultStorePhone     = "(00) 00000-0000"
	DefaultTicketTitle    = "Comprovante de Pedido"
	DefaultTicketSubtitle = "Nao e documento fiscal"
	DefaultFooterMessage  = "Obrigado pela preferencia!"
)

// StoreSettings holds the store identity printed on tickets
type StoreSettings struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name           string         `gorm:"size:255" json:"name"`
	Phone          string         `gorm:"size:50" json:"phone"`
	TicketTitle    string         `gorm:"size:255" json:"ticket_title"`
	TicketSubtitle string         `gorm:"size:255" json:"ticket_subtitle"`
	FooterMessage  string         `gorm:"size:255" json:"footer_message"`
	PrintUnitPrice bool           `gorm:"default:false" json:"print_unit_price"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating the settings row
func (s *StoreSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}

// WithFallbacks returns a copy with every empty text field replaced by its
// hardcoded fallback
func (s StoreSettings) WithFallbacks() StoreSettings {
	if s.Name == "" {
		s.Name = DefaultStoreName
	}
	if s.Phone == "" {
		s.Phone = DefaultStorePhone
	}
	if s.TicketTitle == "" {
		s.TicketTitle = DefaultTicketTitle
	}
	if s.TicketSubtitle == "" {
		s.TicketSubtitle = DefaultTicketSubtitle
	}
	if s.FooterMessage == "" {
		s.FooterMessage = DefaultFooterMessage
	}
	return s
}
