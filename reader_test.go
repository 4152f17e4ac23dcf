package imgprobe

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteReaderPrimitives(t *testing.T) {
	r := byteReader{[]byte{0x01, 0x02, 0x03, 0x04, 'A', 'B', 'C', 0xFF}}

	v8, err := r.u8(0)
	require.NoError(t, err)
	require.Equal(t, uint8(1), v8)

	s8, err := r.i8(7)
	require.NoError(t, err)
	require.Equal(t, int8(-1), s8)

	le16, err := r.u16(0, binary.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, uint16(0x0201), le16)

	be16, err := r.u16(0, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, uint16(0x0102), be16)

	le32, err := r.u32(0, binary.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, uint32(0x04030201), le32)

	be32, err := r.u32(0, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), be32)

	s, err := r.ascii(4, 7)
	require.NoError(t, err)
	require.Equal(t, "ABC", s)
}

func TestByteReaderBounds(t *testing.T) {
	r := byteReader{[]byte{0x01, 0x02}}

	tests := []struct {
		name string
		read func() error
	}{
		{"u8 past end", func() error { _, err := r.u8(2); return err }},
		{"u8 negative offset", func() error { _, err := r.u8(-1); return err }},
		{"u16 straddling end", func() error { _, err := r.u16(1, binary.LittleEndian); return err }},
		{"u32 past end", func() error { _, err := r.u32(0, binary.BigEndian); return err }},
		{"i32 far past end", func() error { _, err := r.i32(1000, binary.BigEndian); return err }},
		{"ascii past end", func() error { _, err := r.ascii(0, 3); return err }},
		{"ascii inverted range", func() error { _, err := r.ascii(2, 0); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.read(), ErrOutOfRange)
		})
	}
}

func TestByteReaderEmpty(t *testing.T) {
	r := byteReader{nil}
	require.Equal(t, 0, r.len())
	_, err := r.u8(0)
	require.ErrorIs(t, err, ErrOutOfRange)
}
