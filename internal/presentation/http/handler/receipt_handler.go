package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salgaderia-api/internal/application/service"
	"github.com/sangkips/salgaderia-api/internal/presentation/http/dto/response"
	"github.com/sangkips/salgaderia-api/internal/receipt"
	"github.com/sangkips/salgaderia-api/pkg/apperror"
)

// ReceiptHandler serves tickets and production reminders
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Ticket renders the ticket of an order, as JSON or as plain text when the
// client accepts text/plain or passes ?format=text
func (h *ReceiptHandler) Ticket(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	doc, _, err := h.receiptService.Ticket(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if wantsText(c) {
		response.Text(c, doc.Text)
		return
	}
	response.OK(c, "Ticket generated successfully", doc)
}

// PrintTicket prints the ticket of an order
func (h *ReceiptHandler) PrintTicket(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	doc, err := h.receiptService.PrintTicket(c.Request.Context(), id)
	printResult(c, "Ticket sent to printer", doc, err)
}

// ShareTicket returns a WhatsApp link sending the ticket to the customer
func (h *ReceiptHandler) ShareTicket(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	link, err := h.receiptService.ShareTicket(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "WhatsApp link generated successfully", link)
}

// Reminder renders the production reminder for ?date=DD/MM/YYYY (default today)
func (h *ReceiptHandler) Reminder(c *gin.Context) {
	doc, err := h.receiptService.Reminder(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if wantsText(c) {
		response.Text(c, doc.Text)
		return
	}
	response.OK(c, "Reminder generated successfully", doc)
}

// PrintReminder prints the production reminder
func (h *ReceiptHandler) PrintReminder(c *gin.Context) {
	doc, err := h.receiptService.PrintReminder(c.Request.Context(), c.Query("date"))
	printResult(c, "Reminder sent to printer", doc, err)
}

// ShareReminder returns a WhatsApp link with the production reminder
func (h *ReceiptHandler) ShareReminder(c *gin.Context) {
	link, err := h.receiptService.ShareReminder(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "WhatsApp link generated successfully", link)
}

// printResult answers a print request. When the printer is unavailable but
// the document was rendered, the document is returned with a warning so the
// operator can still read or share it.
func printResult(c *gin.Context, message string, doc *receipt.Document, err error) {
	if err == nil {
		response.OK(c, message, gin.H{"printed": true, "document": doc})
		return
	}
	if doc != nil && errors.Is(err, apperror.ErrPrinterUnavailable) {
		response.OK(c, "Document rendered but not printed", gin.H{
			"printed":  false,
			"document": doc,
			"warning":  err.Error(),
		})
		return
	}
	response.Error(c, err)
}
