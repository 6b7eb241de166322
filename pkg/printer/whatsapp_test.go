package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sangkips/salgaderia-api/pkg/printer"
)

func TestWhatsAppLink(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		text  string
		want  string
	}{
		{"mobile with mask", "(11) 98765-4321", "Oi", "https://wa.me/5511987654321?text=Oi"},
		{"landline", "1133334444", "a b", "https://wa.me/551133334444?text=a%20b"},
		{"already international", "+55 11 98765-4321", "x", "https://wa.me/5511987654321?text=x"},
		{"no phone", "", "R$ 10,00", "https://wa.me/?text=R%24%2010%2C00"},
		{"newlines", "", "a\nb", "https://wa.me/?text=a%0Ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, printer.WhatsAppLink(tt.phone, tt.text))
		})
	}
}

func TestMonospace(t *testing.T) {
	assert.Equal(t, "```a\nb```", printer.Monospace("a\nb\n\n"))
}
