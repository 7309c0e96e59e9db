package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS control bytes
const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Alignment values for SetAlign.
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character sizes for SetFontSize.
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width and height
)

// Document accumulates an ESC/POS byte stream for a receipt printer. All
// methods return the document so voucher layouts read as a chain.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument starts a document for the given paper width in characters:
// 32 for 58mm paper, 48 for 80mm. The printer is reset at the start of
// every document so leftover state from an aborted job cannot bleed in.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{esc, '@'})
	return d
}

// SetAlign sets text alignment for subsequent lines.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{esc, 'a', byte(align)})
	return d
}

// SetBold toggles emphasized printing.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{esc, 'E', b})
	return d
}

// SetFontSize sets the character size, FontNormal or FontDouble.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{gs, '!', size})
	return d
}

// Text prints one line.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(lf)
	return d
}

// TextF prints one formatted line.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// LineFeed advances the paper one line.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(lf)
	return d
}

// FeedLines advances the paper n lines.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lf)
	}
	return d
}

// Separator prints a rule across the full paper width.
func (d *Document) Separator(char byte) *Document {
	return d.Text(strings.Repeat(string(char), d.width))
}

// KeyValue prints a label on the left and an amount flush right.
func (d *Document) KeyValue(key, value string) *Document {
	return d.spread(key, value)
}

// ItemLine prints a voucher line: quantity and name on the left, line total
// flush right. Quantity is preformatted so fractional quantities print as
// entered.
func (d *Document) ItemLine(qty, name, total string) *Document {
	return d.spread(qty+"x "+name, total)
}

// spread lays out left and right text on one line, truncating the left side
// when both cannot fit at the configured width.
func (d *Document) spread(left, right string) *Document {
	room := d.width - len(right) - 1
	if room > 0 && len(left) > room {
		left = left[:room]
	}
	gap := d.width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	d.buf.WriteString(left)
	d.buf.WriteString(strings.Repeat(" ", gap))
	d.buf.WriteString(right)
	d.buf.WriteByte(lf)
	return d
}

// PartialCut cuts the paper leaving a small tab so the receipt tears clean.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{gs, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
