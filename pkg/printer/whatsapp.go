package printer

import (
	"net/url"
	"strings"
	"unicode"
)

const (
	whatsAppBase  = "https://wa.me/"
	brazilCountry = "55"
)

// WhatsAppLink builds a click-to-chat link carrying text as the message body.
// Brazilian numbers without country code (10 or 11 digits) get 55 prepended.
// An empty phone yields a link that lets the sender pick the contact.
func WhatsAppLink(phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
	if len(digits) == 10 || len(digits) == 11 {
		digits = brazilCountry + digits
	}

	// wa.me expects %20 for spaces, not '+'
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return whatsAppBase + digits + "?text=" + encoded
}

// Monospace wraps text in the triple backticks WhatsApp uses for a fixed
// width font, so column alignment survives on the phone.
func Monospace(text string) string {
	return "```" + strings.TrimRight(text, "\n") + "```"
}
