package imgprobe

import (
	"encoding/binary"
	"fmt"
)

// decodePCX extracts metadata from a PCX header.
//
// The header is a fixed 128-byte layout. Dimensions come from an
// inclusive bounding box, and the plane count sits at byte 65, just
// past the 16-color EGA palette region.
func decodePCX(data []byte, filename string) (MetadataRecord, error) {
	r := byteReader{data}

	manufacturer, err := r.u8(0)
	if err != nil {
		return MetadataRecord{}, err
	}
	if manufacturer != 10 {
		return MetadataRecord{}, fmt.Errorf("%w: not a PCX file", ErrInvalidSignature)
	}

	md := newRecord(filename, FormatPCX)

	encoding, err := r.u8(2)
	if err != nil {
		return MetadataRecord{}, err
	}
	bitsPerPixel, err := r.u8(3)
	if err != nil {
		return MetadataRecord{}, err
	}

	xMin, err := r.u16(4, binary.LittleEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	yMin, err := r.u16(6, binary.LittleEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	xMax, err := r.u16(8, binary.LittleEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	yMax, err := r.u16(10, binary.LittleEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	// Bounds are inclusive on both ends.
	md.Width = int(xMax) - int(xMin) + 1
	md.Height = int(yMax) - int(yMin) + 1

	hDPI, err := r.u16(12, binary.LittleEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	vDPI, err := r.u16(14, binary.LittleEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	if hDPI > 0 {
		md.ResolutionX = int(hDPI)
	}
	if vDPI > 0 {
		md.ResolutionY = int(vDPI)
	}

	planes, err := r.u8(65)
	if err != nil {
		return MetadataRecord{}, err
	}
	md.ColorDepth = int(bitsPerPixel) * int(planes)

	if encoding == 1 {
		md.Compression = "RLE"
	} else {
		md.Compression = "None"
	}

	return md, nil
}
