package imgprobe

import (
	"encoding/binary"
	"fmt"
)

// byteReader provides bounds-checked primitive reads over an in-memory
// buffer. Every accessor fails with ErrOutOfRange instead of panicking
// or wrapping when the requested range exceeds the buffer; the decoders
// rely on this to turn truncated files into clean decode failures.
//
// Endianness is selected per call. TIFF detects its byte order at
// runtime from its own header; the other formats pass a fixed order.
type byteReader struct {
	data []byte
}

func (r byteReader) len() int {
	return len(r.data)
}

// check verifies that [off, off+n) lies within the buffer.
func (r byteReader) check(off, n int) error {
	if off < 0 || n < 0 || off+n > len(r.data) {
		return fmt.Errorf("%w: %d bytes at offset %d, buffer is %d bytes", ErrOutOfRange, n, off, len(r.data))
	}
	return nil
}

func (r byteReader) u8(off int) (uint8, error) {
	if err := r.check(off, 1); err != nil {
		return 0, err
	}
	return r.data[off], nil
}

func (r byteReader) i8(off int) (int8, error) {
	v, err := r.u8(off)
	return int8(v), err
}

func (r byteReader) u16(off int, bo binary.ByteOrder) (uint16, error) {
	if err := r.check(off, 2); err != nil {
		return 0, err
	}
	return bo.Uint16(r.data[off : off+2]), nil
}

func (r byteReader) i16(off int, bo binary.ByteOrder) (int16, error) {
	v, err := r.u16(off, bo)
	return int16(v), err
}

func (r byteReader) u32(off int, bo binary.ByteOrder) (uint32, error) {
	if err := r.check(off, 4); err != nil {
		return 0, err
	}
	return bo.Uint32(r.data[off : off+4]), nil
}

func (r byteReader) i32(off int, bo binary.ByteOrder) (int32, error) {
	v, err := r.u32(off, bo)
	return int32(v), err
}

// ascii returns the bytes in [start, end) as a string.
func (r byteReader) ascii(start, end int) (string, error) {
	if err := r.check(start, end-start); err != nil {
		return "", err
	}
	return string(r.data[start:end]), nil
}
