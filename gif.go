package imgprobe

import (
	"encoding/binary"
	"fmt"
)

// decodeGIF extracts metadata from a GIF logical screen descriptor.
//
// GIF stores no resolution metadata, so records keep the 72 DPI
// default, and LZW is the format's only defined compression scheme.
func decodeGIF(data []byte, filename string) (MetadataRecord, error) {
	r := byteReader{data}

	sig, err := r.ascii(0, 6)
	if err != nil {
		return MetadataRecord{}, err
	}
	if sig != "GIF87a" && sig != "GIF89a" {
		return MetadataRecord{}, fmt.Errorf("%w: not a GIF file", ErrInvalidSignature)
	}

	md := newRecord(filename, FormatGIF)
	md.Compression = "LZW"

	width, err := r.u16(6, binary.LittleEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	height, err := r.u16(8, binary.LittleEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	md.Width = int(width)
	md.Height = int(height)

	// Packed byte: bit 7 global color table flag, bits 6-4 color
	// resolution minus one, bits 2-0 table size minus one (in bits
	// per pixel).
	packed, err := r.u8(10)
	if err != nil {
		return MetadataRecord{}, err
	}
	hasGlobalTable := packed&0x80 != 0
	colorResolution := int((packed>>4)&0x07) + 1
	tableBits := int(packed&0x07) + 1

	if hasGlobalTable {
		md.ColorDepth = tableBits
	} else {
		md.ColorDepth = colorResolution
	}

	return md, nil
}
