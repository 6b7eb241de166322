package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sangkips/salgaderia-api/internal/receipt"
	"github.com/sangkips/salgaderia-api/pkg/printer"
)

func (o *options) location() (*time.Location, error) {
	if o.timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", o.timezone, err)
	}
	return loc, nil
}

// deliver writes doc to out, or a WhatsApp link for phone when --whatsapp is
// set, and also sends it to the printer when --printer is set.
func (o *options) deliver(ctx context.Context, out io.Writer, doc *receipt.Document, phone string) error {
	if o.whatsapp {
		fmt.Fprintln(out, printer.WhatsAppLink(phone, printer.Monospace(doc.Text)))
	} else {
		fmt.Fprint(out, doc.Text)
		if !strings.HasSuffix(doc.Text, "\n") {
			fmt.Fprintln(out)
		}
	}

	if o.printerType == "" {
		return nil
	}

	p, err := printer.New(printer.Config{
		Type:    o.printerType,
		USBPath: o.usbPath,
		Address: o.address,
		Timeout: o.timeout,
	})
	if err != nil {
		return err
	}
	if p.Type() == printer.TypeNone {
		return nil
	}
	if err := p.Print(ctx, printer.EncodeText(doc.Text, !o.utf8)); err != nil {
		return fmt.Errorf("printing %s: %w", doc.Kind, err)
	}
	return nil
}
