package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sangkips/salgaderia-api/internal/logging"
	"github.com/sangkips/salgaderia-api/internal/receipt"
	"github.com/sangkips/salgaderia-api/pkg/apperror"
	"github.com/sangkips/salgaderia-api/pkg/printer"
	"github.com/sangkips/salgaderia-api/pkg/textlayout"
)

// PrinterService sends rendered documents to the thermal printer.
type PrinterService struct {
	printer printer.Printer
	ascii   bool
}

// NewPrinterService creates a new printer service. When ascii is set, accents
// are transliterated before printing.
func NewPrinterService(p printer.Printer, ascii bool) *PrinterService {
	if p == nil {
		p = printer.NewNullPrinter()
	}
	return &PrinterService{
		printer: p,
		ascii:   ascii,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printer.Type() != printer.TypeNone,
		Connected:  s.printer.IsConnected(),
		Type:       s.printer.Type(),
	}
}

// Print sends one document as a complete print job. Without a configured
// printer it fails with ErrPrinterUnavailable so callers can fall back to
// showing the text.
func (s *PrinterService) Print(ctx context.Context, doc *receipt.Document) error {
	if s.printer.Type() == printer.TypeNone {
		return apperror.ErrPrinterUnavailable
	}

	data := printer.EncodeText(doc.Text, s.ascii)
	if err := s.printer.Print(ctx, data); err != nil {
		log := logging.Get("printer")
		log.Error().Err(err).Str("kind", string(doc.Kind)).Str("type", s.printer.Type()).Msg("Print failed")
		return fmt.Errorf("%w: %v", apperror.ErrPrinterUnavailable, err)
	}
	return nil
}

// TestPrint sends a short test page and returns it.
func (s *PrinterService) TestPrint(ctx context.Context) (*receipt.Document, error) {
	const w = textlayout.TicketWidth
	lines := []string{
		textlayout.Separator('=', w),
		textlayout.Center("TESTE DE IMPRESSAO", w),
		textlayout.Separator('=', w),
		textlayout.TwoColumns("Coxinha", "R$ 10,00", w),
		textlayout.TwoColumns("Pão de queijo", "R$ 1.234,56", w),
		textlayout.Separator('-', w),
		textlayout.Center("Impressora: "+s.printer.Type(), w),
		"",
	}
	doc := &receipt.Document{Kind: receipt.KindTicket, Width: w, Text: strings.Join(lines, "\n")}
	if err := s.Print(ctx, doc); err != nil {
		return doc, err
	}
	return doc, nil
}
