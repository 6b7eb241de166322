package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salgaderia-api/internal/application/service"
	"github.com/sangkips/salgaderia-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus())
}

// TestPrint sends a test page to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	doc, err := h.printerService.TestPrint(c.Request.Context())
	printResult(c, "Test page sent to printer", doc, err)
}
