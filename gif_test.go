package imgprobe

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// makeGIF builds a GIF header plus logical screen descriptor.
func makeGIF(version string, width, height uint16, packed byte) []byte {
	b := append([]byte{}, version...)
	var dim [2]byte
	binary.LittleEndian.PutUint16(dim[:], width)
	b = append(b, dim[:]...)
	binary.LittleEndian.PutUint16(dim[:], height)
	b = append(b, dim[:]...)
	return append(b, packed, 0, 0) // packed, background index, aspect ratio
}

func TestDecodeGIF(t *testing.T) {
	// Global color table present, table size field 7: 8 bits per pixel.
	md, err := decodeGIF(makeGIF("GIF89a", 320, 200, 0x80|0x07), "test.gif")
	require.NoError(t, err)
	require.Equal(t, 320, md.Width)
	require.Equal(t, 200, md.Height)
	require.Equal(t, 8, md.ColorDepth)
	require.Equal(t, "LZW", md.Compression)
	require.Equal(t, FormatGIF, md.Format)
	require.Equal(t, 72, md.ResolutionX)
	require.Equal(t, 72, md.ResolutionY)
}

func TestDecodeGIF87a(t *testing.T) {
	md, err := decodeGIF(makeGIF("GIF87a", 16, 16, 0x80), "old.gif")
	require.NoError(t, err)
	require.Equal(t, 1, md.ColorDepth) // table size field 0
}

func TestDecodeGIFNoGlobalTable(t *testing.T) {
	// Without a global color table the color-resolution bits decide:
	// bits 6-4 value 6 means 7 bits per primary.
	md, err := decodeGIF(makeGIF("GIF89a", 1, 1, 0x60), "nogct.gif")
	require.NoError(t, err)
	require.Equal(t, 7, md.ColorDepth)
}

func TestDecodeGIFInvalid(t *testing.T) {
	_, err := decodeGIF(makeGIF("GIF88a", 1, 1, 0), "bad.gif")
	require.ErrorIs(t, err, ErrInvalidSignature)

	_, err = decodeGIF([]byte("GIF"), "tiny.gif")
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = decodeGIF(makeGIF("GIF89a", 1, 1, 0)[:8], "short.gif")
	require.ErrorIs(t, err, ErrOutOfRange)
}
