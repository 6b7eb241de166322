package printer

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Document builds an ESC/POS byte stream for thermal printers.
//
// Text documents arrive already laid out to the paper width, so the printer
// is kept left aligned and lines are written verbatim.
type Document struct {
	buf   bytes.Buffer
	ascii bool
}

// NewDocument creates a new ESC/POS document. When ascii is set, accented
// characters are replaced by their base letter so printers without a Latin
// code page do not print garbage.
func NewDocument(ascii bool) *Document {
	d := &Document{ascii: ascii}
	d.Init()
	return d
}

// Init sends the ESC @ (initialize printer) command.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(d.encode(s))
	d.buf.WriteByte(LF)
	return d
}

// Block writes a newline-delimited block of text, one printer line per line.
func (d *Document) Block(text string) *Document {
	for _, line := range strings.Split(text, "\n") {
		d.Text(line)
	}
	return d
}

// PartialCut sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// EncodeText wraps a laid out text document into a complete print job:
// initialize, left align, the text itself, a few blank lines and a cut.
func EncodeText(text string, ascii bool) []byte {
	return NewDocument(ascii).
		SetAlign(AlignLeft).
		Block(text).
		FeedLines(3).
		PartialCut().
		Bytes()
}

func (d *Document) encode(s string) string {
	if !d.ascii {
		return s
	}
	return ToASCII(s)
}

// ToASCII strips diacritics ("Pão" -> "Pao") and replaces anything else
// outside ASCII with '?'.
func ToASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return '?'
		}
		return r
	}, out)
}
