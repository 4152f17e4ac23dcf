package imgprobe

import (
	"encoding/binary"
	"fmt"
	"math"
)

var jpegSOFNames = map[byte]string{
	0xC0: "Baseline DCT",
	0xC1: "Extended Sequential DCT",
	0xC2: "Progressive DCT",
	0xC3: "Lossless (Sequential)",
}

// isSOFMarker reports whether the marker byte opens a Start-Of-Frame
// segment. 0xC4 (DHT), 0xC8 (JPG), and 0xCC (DAC) share the range but
// carry no frame data.
func isSOFMarker(marker byte) bool {
	if marker < 0xC0 || marker > 0xCF {
		return false
	}
	switch marker {
	case 0xC4, 0xC8, 0xCC:
		return false
	}
	return true
}

// decodeJPEG extracts metadata from a JPEG marker stream.
//
// The walk covers segments of the form 0xFF <marker> <2-byte length>,
// where the length includes its own two bytes. It stops at buffer end,
// at SOS (entropy-coded data follows, no more headers), or at any byte
// that is not 0xFF where a marker was expected. The first SOF segment
// wins; hierarchical JPEGs with later frames keep the first frame's
// dimensions.
func decodeJPEG(data []byte, filename string) (MetadataRecord, error) {
	r := byteReader{data}

	// Verify the SOI marker
	soi, err := r.u16(0, binary.BigEndian)
	if err != nil {
		return MetadataRecord{}, err
	}
	if soi != 0xFFD8 {
		return MetadataRecord{}, fmt.Errorf("%w: not a JPEG file", ErrInvalidSignature)
	}

	md := newRecord(filename, FormatJPEG)
	md.Compression = "JPEG"
	sofFound := false

	off := 2
	for off+4 <= r.len() {
		prefix, _ := r.u8(off)
		if prefix != 0xFF {
			break
		}
		marker, _ := r.u8(off + 1)

		// 0xFF fill bytes may pad the space between segments.
		if marker == 0xFF {
			off++
			continue
		}
		// TEM and restart markers are standalone, no length field.
		if marker == 0x01 || (marker >= 0xD0 && marker <= 0xD8) {
			off += 2
			continue
		}
		// EOI: nothing further to scan.
		if marker == 0xD9 {
			break
		}

		length, err := r.u16(off+2, binary.BigEndian)
		if err != nil {
			break
		}
		// The length field includes its own two bytes; anything
		// smaller is malformed and would stall the walk.
		if length < 2 {
			return MetadataRecord{}, fmt.Errorf("%w: segment 0x%02X reports length %d", ErrInvalidSignature, marker, length)
		}
		seg := off + 4 // first payload byte

		switch {
		case isSOFMarker(marker) && !sofFound:
			precision, err := r.u8(seg)
			if err != nil {
				return MetadataRecord{}, err
			}
			height, err := r.u16(seg+1, binary.BigEndian)
			if err != nil {
				return MetadataRecord{}, err
			}
			width, err := r.u16(seg+3, binary.BigEndian)
			if err != nil {
				return MetadataRecord{}, err
			}
			components, err := r.u8(seg + 5)
			if err != nil {
				return MetadataRecord{}, err
			}
			md.Height = int(height)
			md.Width = int(width)
			md.ColorDepth = int(precision) * int(components)
			if name, ok := jpegSOFNames[marker]; ok {
				md.Compression = name
			} else {
				md.Compression = fmt.Sprintf("DCT (SOF%d)", marker-0xC0)
			}
			sofFound = true

		case marker == 0xE0:
			// APP0: resolution lives in the JFIF segment.
			if ident, err := r.ascii(seg, seg+5); err == nil && ident == "JFIF\x00" {
				unit, err1 := r.u8(seg + 7)
				xDensity, err2 := r.u16(seg+8, binary.BigEndian)
				yDensity, err3 := r.u16(seg+10, binary.BigEndian)
				if err1 == nil && err2 == nil && err3 == nil {
					switch unit {
					case 1: // dots per inch
						md.ResolutionX = int(xDensity)
						md.ResolutionY = int(yDensity)
					case 2: // dots per centimeter
						md.ResolutionX = int(math.Round(float64(xDensity) * 2.54))
						md.ResolutionY = int(math.Round(float64(yDensity) * 2.54))
					}
				}
			}
		}

		// SOS: compressed scan data follows, no more marker segments.
		if marker == 0xDA {
			break
		}
		off += 2 + int(length)
	}

	// A truncated stream with no SOF still decodes; 24-bit is the
	// defined fallback depth.
	if !sofFound {
		md.ColorDepth = 24
	}

	return md, nil
}
