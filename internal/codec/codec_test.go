package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalecode-solutions/runecut"
	"github.com/scalecode-solutions/runecut/internal/config"
)

func TestDecode(t *testing.T) {
	want := runecut.FromString("A𝔼Ѝ")

	tests := []struct {
		name     string
		input    []byte
		encoding string
	}{
		{"utf8", []byte("A𝔼Ѝ"), config.EncodingUTF8},
		{"utf8 with bom", append([]byte{0xef, 0xbb, 0xbf}, "A𝔼Ѝ"...), config.EncodingUTF8},
		{"auto utf8", []byte("A𝔼Ѝ"), config.EncodingAuto},
		{"auto utf16le bom", []byte{0xff, 0xfe, 'A', 0, 0x35, 0xd8, 0x3c, 0xdd, 0x0d, 0x04}, config.EncodingAuto},
		{"auto utf16be bom", []byte{0xfe, 0xff, 0, 'A', 0xd8, 0x35, 0xdd, 0x3c, 0x04, 0x0d}, config.EncodingAuto},
		{"utf16le", []byte{'A', 0, 0x35, 0xd8, 0x3c, 0xdd, 0x0d, 0x04}, config.EncodingUTF16LE},
		{"utf16be with bom", []byte{0xfe, 0xff, 0, 'A', 0xd8, 0x35, 0xdd, 0x3c, 0x04, 0x0d}, config.EncodingUTF16BE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(bytes.NewReader(tt.input), tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{'A', 0, 'B'}), config.EncodingUTF16LE)
	assert.ErrorIs(t, err, ErrOddLength)

	_, err = Decode(strings.NewReader("x"), "latin1")
	assert.ErrorIs(t, err, config.ErrInvalidEncoding)
}

func TestDecodeKeepsIsolatedSurrogates(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		encoding string
	}{
		{"utf16le", []byte{0x3c, 0xdd, 'x', 0}, config.EncodingUTF16LE},
		{"utf16be", []byte{0xdd, 0x3c, 0, 'x'}, config.EncodingUTF16BE},
		{"auto utf16le bom", []byte{0xff, 0xfe, 0x3c, 0xdd, 'x', 0}, config.EncodingAuto},
		{"auto utf16be bom", []byte{0xfe, 0xff, 0xdd, 0x3c, 0, 'x'}, config.EncodingAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(bytes.NewReader(tt.input), tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, runecut.Text{0xdd3c, 'x'}, got)
		})
	}
}

func TestDecodeAutoShortInput(t *testing.T) {
	for _, input := range []string{"", "a", "\xff"} {
		got, err := Decode(strings.NewReader(input), config.EncodingAuto)
		require.NoError(t, err, "%q", input)
		assert.NotNil(t, got)
	}

	_, err := Decode(bytes.NewReader([]byte{0xff, 0xfe, 'a'}), config.EncodingAuto)
	assert.ErrorIs(t, err, ErrOddLength)
}

func TestEncode(t *testing.T) {
	text := runecut.Text{0xdd3c, 0x040d}

	var le bytes.Buffer
	require.NoError(t, Encode(&le, text, config.EncodingUTF16LE))
	assert.Equal(t, []byte{0x3c, 0xdd, 0x0d, 0x04}, le.Bytes())

	var be bytes.Buffer
	require.NoError(t, Encode(&be, text, config.EncodingUTF16BE))
	assert.Equal(t, []byte{0xdd, 0x3c, 0x04, 0x0d}, be.Bytes())

	var u8 bytes.Buffer
	require.NoError(t, Encode(&u8, text, config.EncodingUTF8))
	assert.Equal(t, "�Ѝ", u8.String())

	assert.ErrorIs(t, Encode(&u8, text, config.EncodingAuto), config.ErrInvalidEncoding)
}

func TestRoundTripUTF16(t *testing.T) {
	text := runecut.Text{'a', 0xd835, 0xdd3c, 0xd835}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, text, config.EncodingUTF16BE))

	got, err := Decode(&buf, config.EncodingUTF16BE)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}
