// Package codec translates the EBCDIC text fields of a diskette image.
package codec

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DefaultPlaceholder replaces bytes that have no printable representation.
const DefaultPlaceholder = '.'

// Supported code pages, keyed by their configuration name.
var codePages = map[string]*charmap.Charmap{
	"037":  charmap.CodePage037,
	"1047": charmap.CodePage1047,
	"1140": charmap.CodePage1140,
}

// Codec decodes EBCDIC bytes through a fixed 256 entry table.
type Codec struct {
	table [256]rune
}

// New builds a codec for the named code page. An empty name selects 037.
func New(codePage string, placeholder rune) (*Codec, error) {
	if codePage == "" {
		codePage = "037"
	}
	cm, ok := codePages[codePage]
	if !ok {
		return nil, fmt.Errorf("unsupported code page %q", codePage)
	}
	if placeholder == 0 {
		placeholder = DefaultPlaceholder
	}

	c := &Codec{}
	for i := 0; i < 256; i++ {
		r := cm.DecodeByte(byte(i))
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			r = placeholder
		}
		c.table[i] = r
	}
	return c, nil
}

// Default returns the Code Page 037 codec with the default placeholder.
func Default() *Codec {
	c, err := New("037", DefaultPlaceholder)
	if err != nil {
		panic(err)
	}
	return c
}

// DecodeByte translates a single byte
func (c *Codec) DecodeByte(b byte) rune {
	return c.table[b]
}

// Decode translates every byte of data.
func (c *Codec) Decode(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(c.table[b])
	}
	return sb.String()
}

// Table returns a copy of the translation table.
func (c *Codec) Table() [256]rune {
	return c.table
}

// IsBlank reports whether data holds only NUL or EBCDIC space bytes.
func IsBlank(data []byte) bool {
	for _, b := range data {
		if b != 0x00 && b != 0x40 {
			return false
		}
	}
	return true
}

// CodePages lists the supported code page names.
func CodePages() []string {
	return []string{"037", "1047", "1140"}
}
