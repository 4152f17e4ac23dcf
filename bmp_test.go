package imgprobe

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// makeBMP builds a minimal BMP file header plus BITMAPINFOHEADER.
func makeBMP(width, height int32, bitsPerPixel uint16, compression uint32, xppm, yppm int32) []byte {
	b := make([]byte, 54)
	b[0] = 'B'
	b[1] = 'M'
	binary.LittleEndian.PutUint32(b[10:], 54) // pixel data offset
	binary.LittleEndian.PutUint32(b[14:], 40) // DIB header size
	binary.LittleEndian.PutUint32(b[18:], uint32(width))
	binary.LittleEndian.PutUint32(b[22:], uint32(height))
	binary.LittleEndian.PutUint16(b[26:], 1) // planes
	binary.LittleEndian.PutUint16(b[28:], bitsPerPixel)
	binary.LittleEndian.PutUint32(b[30:], compression)
	binary.LittleEndian.PutUint32(b[38:], uint32(xppm))
	binary.LittleEndian.PutUint32(b[42:], uint32(yppm))
	return b
}

func TestDecodeBMP(t *testing.T) {
	md, err := decodeBMP(makeBMP(640, 480, 24, 0, 0, 0), "test.bmp")
	require.NoError(t, err)
	require.Equal(t, 640, md.Width)
	require.Equal(t, 480, md.Height)
	require.Equal(t, 24, md.ColorDepth)
	require.Equal(t, "None (BI_RGB)", md.Compression)
	require.Equal(t, FormatBMP, md.Format)
	// No stored resolution keeps the 72 DPI default.
	require.Equal(t, 72, md.ResolutionX)
	require.Equal(t, 72, md.ResolutionY)
}

func TestDecodeBMPTopDownHeight(t *testing.T) {
	// Negative height marks a top-down DIB; magnitude is reported.
	md, err := decodeBMP(makeBMP(100, -200, 32, 0, 0, 0), "topdown.bmp")
	require.NoError(t, err)
	require.Equal(t, 200, md.Height)
}

func TestDecodeBMPResolution(t *testing.T) {
	// 2835 ppm is the classic 72 DPI; 3780 ppm is 96 DPI.
	md, err := decodeBMP(makeBMP(1, 1, 24, 0, 3780, 2835), "res.bmp")
	require.NoError(t, err)
	require.Equal(t, 96, md.ResolutionX)
	require.Equal(t, 72, md.ResolutionY)
}

func TestDecodeBMPCompression(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{0, "None (BI_RGB)"},
		{1, "RLE8 (BI_RLE8)"},
		{3, "Bitfields (BI_BITFIELDS)"},
		{99, "Unknown (99)"},
	}
	for _, tt := range tests {
		md, err := decodeBMP(makeBMP(1, 1, 8, tt.code, 0, 0), "comp.bmp")
		require.NoError(t, err)
		require.Equal(t, tt.want, md.Compression)
	}
}

func TestDecodeBMPInvalid(t *testing.T) {
	_, err := decodeBMP([]byte("PM rest of the file"), "bad.bmp")
	require.ErrorIs(t, err, ErrInvalidSignature)

	_, err = decodeBMP(makeBMP(1, 1, 24, 0, 0, 0)[:20], "short.bmp")
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = decodeBMP([]byte{'B'}, "tiny.bmp")
	require.ErrorIs(t, err, ErrOutOfRange)
}
