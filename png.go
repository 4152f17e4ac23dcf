package imgprobe

import (
	"encoding/binary"
	"fmt"
)

var pngSignature = [...]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// decodePNG extracts metadata from a PNG header.
//
// Width, height, bit depth, color type, and compression method all live
// in the IHDR chunk, which the PNG spec requires to follow the signature
// immediately, so those fields are read from fixed offsets. Resolution
// lives in an optional pHYs chunk and requires a linear chunk walk.
func decodePNG(data []byte, filename string) (MetadataRecord, error) {
	r := byteReader{data}

	// Verify the 8-byte PNG signature byte-for-byte
	for i, b := range pngSignature {
		got, err := r.u8(i)
		if err != nil {
			return MetadataRecord{}, err
		}
		if got != b {
			return MetadataRecord{}, fmt.Errorf("%w: not a PNG file", ErrInvalidSignature)
		}
	}

	md := newRecord(filename, FormatPNG)

	// IHDR data begins at offset 16 (signature + length + type).
	width, err := r.u32(16, binary.BigEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	height, err := r.u32(20, binary.BigEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	bitDepth, err := r.u8(24)
	if err != nil {
		return MetadataRecord{}, err
	}
	colorType, err := r.u8(25)
	if err != nil {
		return MetadataRecord{}, err
	}
	compressionMethod, err := r.u8(26)
	if err != nil {
		return MetadataRecord{}, err
	}

	md.Width = int(width)
	md.Height = int(height)

	// Total depth scales bit depth by the channel count the color
	// type implies: 2 = truecolor, 4 = grayscale+alpha, 6 = truecolor+alpha.
	switch colorType {
	case 2:
		md.ColorDepth = int(bitDepth) * 3
	case 4:
		md.ColorDepth = int(bitDepth) * 2
	case 6:
		md.ColorDepth = int(bitDepth) * 4
	default:
		md.ColorDepth = int(bitDepth)
	}

	if compressionMethod == 0 {
		md.Compression = "Deflate"
	} else {
		md.Compression = fmt.Sprintf("Unknown (%d)", compressionMethod)
	}

	if x, y, ok := findPNGResolution(r); ok {
		md.ResolutionX = x
		md.ResolutionY = y
	}

	return md, nil
}

// findPNGResolution walks the chunk list after IHDR looking for pHYs.
// Each chunk is a 4-byte length, 4-byte ASCII type, payload, and 4-byte
// CRC. The walk stops at buffer end; a truncated tail simply means no
// resolution metadata.
func findPNGResolution(r byteReader) (x, y int, ok bool) {
	// First chunk after IHDR (8 signature + 8 header + 13 data + 4 CRC).
	off := 33
	for off+8 <= r.len() {
		length, err := r.u32(off, binary.BigEndian)
		if err != nil {
			return 0, 0, false
		}
		chunkType, err := r.ascii(off+4, off+8)
		if err != nil {
			return 0, 0, false
		}

		if chunkType == "pHYs" {
			ppuX, err := r.u32(off+8, binary.BigEndian)
			if err != nil {
				return 0, 0, false
			}
			ppuY, err := r.u32(off+12, binary.BigEndian)
			if err != nil {
				return 0, 0, false
			}
			unit, err := r.u8(off + 16)
			if err != nil {
				return 0, 0, false
			}
			// Unit 1 is pixels per meter; unit 0 gives only an
			// aspect ratio and carries no absolute resolution.
			if unit == 1 {
				return metersToInches(int32(ppuX)), metersToInches(int32(ppuY)), true
			}
			return 0, 0, false
		}

		advance := 8 + int(length) + 4
		if int(length) < 0 || advance <= 0 {
			// Corrupt length field; stop rather than loop forever.
			return 0, 0, false
		}
		off += advance
	}
	return 0, 0, false
}
