package request

// UpdateSettingsRequest represents a store settings update; omitted fields
// are left unchanged
type UpdateSettingsRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=255"`
	Phone          *string `json:"phone" binding:"omitempty,max=50"`
	TicketTitle    *string `json:"ticket_title" binding:"omitempty,max=255"`
	TicketSubtitle *string `json:"ticket_subtitle" binding:"omitempty,max=255"`
	FooterMessage  *string `json:"footer_message" binding:"omitempty,max=255"`
	PrintUnitPrice *bool   `json:"print_unit_price"`
}
