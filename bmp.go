package imgprobe

import (
	"encoding/binary"
	"fmt"
	"math"
)

// metersToInches converts a pixels-per-meter value to dots per inch.
func metersToInches(pixelsPerMeter int32) int {
	return int(math.Round(float64(pixelsPerMeter) * 0.0254))
}

var bmpCompressionNames = map[uint32]string{
	0: "None (BI_RGB)",
	1: "RLE8 (BI_RLE8)",
	2: "RLE4 (BI_RLE4)",
	3: "Bitfields (BI_BITFIELDS)",
	4: "JPEG (BI_JPEG)",
	5: "PNG (BI_PNG)",
}

// decodeBMP extracts metadata from a BMP header.
func decodeBMP(data []byte, filename string) (MetadataRecord, error) {
	r := byteReader{data}

	// Verify BMP signature
	sig, err := r.ascii(0, 2)
	if err != nil {
		return MetadataRecord{}, err
	}
	if sig != "BM" {
		return MetadataRecord{}, fmt.Errorf("%w: not a BMP file", ErrInvalidSignature)
	}

	md := newRecord(filename, FormatBMP)

	// DIB header size (offset 14) decides whether the extended
	// BITMAPINFOHEADER fields, including resolution, are present.
	dibSize, err := r.u32(14, binary.LittleEndian)
	if err != nil {
		return MetadataRecord{}, err
	}

	width, err := r.i32(18, binary.LittleEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	// Height is negative for top-down DIBs; report magnitude.
	height, err := r.i32(22, binary.LittleEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	if height < 0 {
		height = -height
	}
	md.Width = int(width)
	md.Height = int(height)

	bitsPerPixel, err := r.u16(28, binary.LittleEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	md.ColorDepth = int(bitsPerPixel)

	compression, err := r.u32(30, binary.LittleEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	if name, ok := bmpCompressionNames[compression]; ok {
		md.Compression = name
	} else {
		md.Compression = fmt.Sprintf("Unknown (%d)", compression)
	}

	if dibSize >= 40 {
		// Resolution is stored in pixels per meter (offsets 38/42).
		xppm, err := r.i32(38, binary.LittleEndian)
		if err != nil {
			return MetadataRecord{}, err
		}
		yppm, err := r.i32(42, binary.LittleEndian)
		if err != nil {
			return MetadataRecord{}, err
		}
		if xppm > 0 {
			md.ResolutionX = metersToInches(xppm)
		}
		if yppm > 0 {
			md.ResolutionY = metersToInches(yppm)
		}
	}

	return md, nil
}
