// Package codec reads and writes runecut text as UTF-8 or UTF-16 byte
// streams.
//
// UTF-16 streams are converted unit by unit so isolated surrogates survive a
// round trip. UTF-8 cannot represent them; they are written as U+FFFD.
package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/scalecode-solutions/runecut"
	"github.com/scalecode-solutions/runecut/internal/config"
)

// ErrOddLength is returned when a UTF-16 stream ends in the middle of a code
// unit.
var ErrOddLength = errors.New("utf-16 input has an odd number of bytes")

const byteOrderMark = 0xfeff

// Decode reads all of r and returns its code units. For [config.EncodingAuto]
// a UTF-8 or UTF-16 byte order mark selects the encoding, otherwise UTF-8 is
// assumed. A leading byte order mark is never part of the result.
func Decode(r io.Reader, encoding string) (runecut.Text, error) {
	switch encoding {
	case config.EncodingUTF16LE:
		return decodeUTF16(r, binary.LittleEndian)
	case config.EncodingUTF16BE:
		return decodeUTF16(r, binary.BigEndian)
	case config.EncodingUTF8:
		return decodeUTF8(r, unicode.UTF8BOM.NewDecoder())
	case config.EncodingAuto:
		return decodeAuto(r)
	default:
		return nil, fmt.Errorf("decode %q: %w", encoding, config.ErrInvalidEncoding)
	}
}

// Encode writes t to w. UTF-16 output has no byte order mark.
func Encode(w io.Writer, t runecut.Text, encoding string) error {
	var err error
	switch encoding {
	case config.EncodingUTF16LE:
		err = binary.Write(w, binary.LittleEndian, []uint16(t))
	case config.EncodingUTF16BE:
		err = binary.Write(w, binary.BigEndian, []uint16(t))
	case config.EncodingUTF8:
		_, err = io.WriteString(w, t.String())
	default:
		return fmt.Errorf("encode %q: %w", encoding, config.ErrInvalidEncoding)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", encoding, err)
	}
	return nil
}

// decodeAuto sends streams starting with a UTF-16 byte order mark to
// decodeUTF16 and everything else through the UTF-8 decoder.
func decodeAuto(r io.Reader) (runecut.Text, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	switch {
	case bytes.Equal(head, []byte{0xff, 0xfe}):
		return decodeUTF16(br, binary.LittleEndian)
	case bytes.Equal(head, []byte{0xfe, 0xff}):
		return decodeUTF16(br, binary.BigEndian)
	}
	return decodeUTF8(br, unicode.UTF8BOM.NewDecoder())
}

func decodeUTF8(r io.Reader, t transform.Transformer) (runecut.Text, error) {
	data, err := io.ReadAll(transform.NewReader(r, t))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return runecut.FromString(string(data)), nil
}

func decodeUTF16(r io.Reader, order binary.ByteOrder) (runecut.Text, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("decode: %d bytes: %w", len(data), ErrOddLength)
	}
	units := make(runecut.Text, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		units = append(units, order.Uint16(data[i:]))
	}
	if len(units) > 0 && units[0] == byteOrderMark {
		units = units[1:]
	}
	return units, nil
}
