package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ESC/POS command bytes
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

// Character size
const (
	FontNormal = 0x00
	FontDouble = 0x11
	FontWide   = 0x10
	FontTall   = 0x01
)

// Paper widths in characters.
const (
	Width58mm = 32
	Width80mm = 48
)

// Slip builds an ESC/POS byte stream. Methods chain.
type Slip struct {
	buf   bytes.Buffer
	width int
}

// NewSlip starts a slip for a printer with charWidth columns.
func NewSlip(charWidth int) *Slip {
	if charWidth <= 0 {
		charWidth = Width58mm
	}
	s := &Slip{width: charWidth}
	s.Init()
	return s
}

func (s *Slip) Width() int { return s.width }

// Init writes ESC @.
func (s *Slip) Init() *Slip {
	s.buf.Write([]byte{ESC, '@'})
	return s
}

func (s *Slip) LineFeed() *Slip {
	s.buf.WriteByte(LF)
	return s
}

func (s *Slip) FeedLines(n int) *Slip {
	for i := 0; i < n; i++ {
		s.buf.WriteByte(LF)
	}
	return s
}

func (s *Slip) SetAlign(align int) *Slip {
	s.buf.Write([]byte{ESC, 'a', byte(align)})
	return s
}

func (s *Slip) SetBold(on bool) *Slip {
	b := byte(0)
	if on {
		b = 1
	}
	s.buf.Write([]byte{ESC, 'E', b})
	return s
}

func (s *Slip) SetFontSize(size byte) *Slip {
	s.buf.Write([]byte{GS, '!', size})
	return s
}

// Text writes a line. Longer lines are left to the printer to wrap.
func (s *Slip) Text(line string) *Slip {
	s.buf.WriteString(line)
	s.buf.WriteByte(LF)
	return s
}

func (s *Slip) TextF(format string, args ...interface{}) *Slip {
	return s.Text(fmt.Sprintf(format, args...))
}

// Title prints a centered bold double-size line and restores normal text.
func (s *Slip) Title(line string) *Slip {
	return s.SetAlign(AlignCenter).
		SetBold(true).
		SetFontSize(FontDouble).
		Text(line).
		SetFontSize(FontNormal).
		SetBold(false)
}

func (s *Slip) Separator(char byte) *Slip {
	s.buf.WriteString(strings.Repeat(string(char), s.width))
	s.buf.WriteByte(LF)
	return s
}

// KeyValue prints key left and value right on one line. The key is
// shortened when both do not fit.
func (s *Slip) KeyValue(key, value string) *Slip {
	return s.Text(s.justify(key, value))
}

// ItemLine prints "<qty>x <name>" with the total right-aligned.
func (s *Slip) ItemLine(qty int64, name, total string) *Slip {
	return s.Text(s.justify(fmt.Sprintf("%dx %s", qty, name), total))
}

func (s *Slip) justify(left, right string) string {
	room := s.width - utf8.RuneCountInString(right) - 1
	left = Truncate(left, room)
	spaces := s.width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if spaces < 1 {
		spaces = 1
	}
	return left + strings.Repeat(" ", spaces) + right
}

// Cut sends a full cut.
func (s *Slip) Cut() *Slip {
	s.buf.Write([]byte{GS, 'V', 0x00})
	return s
}

func (s *Slip) PartialCut() *Slip {
	s.buf.Write([]byte{GS, 'V', 0x01})
	return s
}

func (s *Slip) Bytes() []byte {
	return s.buf.Bytes()
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
