// Package encoding turns text of unknown encoding into UTF-8. Account files
// written by older builds and bank statement exports are often Windows-1252
// or UTF-16 rather than UTF-8.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset names a detected source encoding.
type Charset string

const (
	UTF8        Charset = "UTF-8"
	UTF8BOM     Charset = "UTF-8 (BOM)"
	UTF16LE     Charset = "UTF-16LE"
	UTF16BE     Charset = "UTF-16BE"
	Windows1252 Charset = "windows-1252"
	ISO8859_9   Charset = "ISO-8859-9"
)

const sampleSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect guesses the charset of sample, which should be the start of the text.
//
// A byte order mark decides first, then plain UTF-8 validity, then chardet's
// best guess. Anything chardet cannot place is treated as Windows-1252.
func Detect(sample []byte) Charset {
	switch {
	case bytes.HasPrefix(sample, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(sample, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(sample, bomUTF16BE):
		return UTF16BE
	case utf8.Valid(sample):
		return UTF8
	}

	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		return Windows1252
	}

	switch result.Charset {
	case "UTF-8":
		return UTF8
	case "ISO-8859-9":
		return ISO8859_9
	}

	return Windows1252
}

func (c Charset) decoder() *encoding.Decoder {
	switch c {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case Windows1252:
		return charmap.Windows1252.NewDecoder()
	case ISO8859_9:
		return charmap.ISO8859_9.NewDecoder()
	}

	return nil
}

// NewReader returns a reader yielding r's content as UTF-8, together with the
// charset it was decoded from. A UTF-8 byte order mark is dropped.
func NewReader(r io.Reader) (io.Reader, Charset, error) {
	br := bufio.NewReaderSize(r, sampleSize)

	sample, err := br.Peek(sampleSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("sniffing encoding: %w", err)
	}

	cs := Detect(sample)

	if cs == UTF8BOM {
		_, _ = br.Discard(len(bomUTF8))
		return br, cs, nil
	}

	if dec := cs.decoder(); dec != nil {
		return transform.NewReader(br, dec), cs, nil
	}

	return br, cs, nil
}

// NewUTF8Reader is NewReader without the detected charset.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	out, _, err := NewReader(r)
	return out, err
}
