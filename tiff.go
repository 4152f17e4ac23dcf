package imgprobe

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Baseline TIFF tags recognized by the decoder. Anything else is
// skipped.
const (
	tiffTagImageWidth      = 256
	tiffTagImageLength     = 257
	tiffTagBitsPerSample   = 258
	tiffTagCompression     = 259
	tiffTagSamplesPerPixel = 277
	tiffTagXResolution     = 282
	tiffTagYResolution     = 283
	tiffTagResolutionUnit  = 296
)

const tiffTypeShort = 3

var tiffCompressionNames = map[uint32]string{
	1:     "None",
	2:     "CCITT RLE",
	3:     "CCITT Group 3 Fax",
	4:     "CCITT Group 4 Fax",
	5:     "LZW",
	6:     "JPEG (old-style)",
	7:     "JPEG",
	8:     "Deflate (Adobe)",
	32773: "PackBits RLE",
}

// decodeTIFF extracts metadata from a TIFF Image File Directory.
//
// TIFF is the one format whose byte order is runtime state: the header
// declares "II" (little-endian) or "MM" (big-endian) and every later
// field read must honor it. Directory entries are 12 bytes: tag, data
// type, count, and an inline value or an offset to the value. Only the
// baseline tags above are read, and only under the simple inline/offset
// convention baseline writers use.
func decodeTIFF(data []byte, filename string) (MetadataRecord, error) {
	r := byteReader{data}

	orderTag, err := r.ascii(0, 2)
	if err != nil {
		return MetadataRecord{}, err
	}
	var bo binary.ByteOrder
	switch orderTag {
	case "II":
		bo = binary.LittleEndian
	case "MM":
		bo = binary.BigEndian
	default:
		return MetadataRecord{}, fmt.Errorf("%w: bad TIFF byte order %q", ErrInvalidSignature, orderTag)
	}

	magic, err := r.u16(2, bo)
	if err != nil {
		return MetadataRecord{}, err
	}
	if magic != 42 {
		return MetadataRecord{}, fmt.Errorf("%w: bad TIFF magic number %d", ErrInvalidSignature, magic)
	}

	ifdOffset, err := r.u32(4, bo)
	if err != nil {
		return MetadataRecord{}, err
	}
	entryCount, err := r.u16(int(ifdOffset), bo)
	if err != nil {
		return MetadataRecord{}, err
	}

	md := newRecord(filename, FormatTIFF)
	md.Compression = "None" // TIFF's default when tag 259 is absent

	// Baseline defaults per the TIFF specification.
	bitsPerSample := 1
	samplesPerPixel := 1
	resX, resY := 0.0, 0.0
	resUnit := uint16(2) // inches

	for i := 0; i < int(entryCount); i++ {
		entry := int(ifdOffset) + 2 + i*12
		tag, err := r.u16(entry, bo)
		if err != nil {
			return MetadataRecord{}, err
		}
		dataType, err := r.u16(entry+2, bo)
		if err != nil {
			return MetadataRecord{}, err
		}
		value, err := tiffEntryValue(r, entry+8, dataType, bo)
		if err != nil {
			return MetadataRecord{}, err
		}

		switch tag {
		case tiffTagImageWidth:
			md.Width = int(value)
		case tiffTagImageLength:
			md.Height = int(value)
		case tiffTagBitsPerSample:
			bitsPerSample = int(value)
		case tiffTagCompression:
			if name, ok := tiffCompressionNames[value]; ok {
				md.Compression = name
			} else {
				md.Compression = fmt.Sprintf("Unknown (%d)", value)
			}
		case tiffTagSamplesPerPixel:
			samplesPerPixel = int(value)
		case tiffTagXResolution:
			if v, ok, err := tiffRational(r, int(value), bo); err != nil {
				return MetadataRecord{}, err
			} else if ok {
				resX = v
			}
		case tiffTagYResolution:
			if v, ok, err := tiffRational(r, int(value), bo); err != nil {
				return MetadataRecord{}, err
			} else if ok {
				resY = v
			}
		case tiffTagResolutionUnit:
			resUnit = uint16(value)
		}
	}

	// Unit 3 means values are per centimeter; convert once the whole
	// directory has been read, since tag order is not guaranteed.
	if resUnit == 3 {
		resX *= 2.54
		resY *= 2.54
	}
	if resX > 0 {
		md.ResolutionX = int(math.Round(resX))
	}
	if resY > 0 {
		md.ResolutionY = int(math.Round(resY))
	}

	md.ColorDepth = bitsPerSample * samplesPerPixel

	return md, nil
}

// tiffEntryValue reads an entry's inline value field. SHORT values
// occupy the first two bytes of the field; everything else is read as a
// 32-bit value (for the resolution tags this is the offset to the
// rational).
func tiffEntryValue(r byteReader, off int, dataType uint16, bo binary.ByteOrder) (uint32, error) {
	if dataType == tiffTypeShort {
		v, err := r.u16(off, bo)
		return uint32(v), err
	}
	return r.u32(off, bo)
}

// tiffRational reads the two 32-bit integers of a RATIONAL value at the
// given offset. A zero denominator is treated as no value.
func tiffRational(r byteReader, off int, bo binary.ByteOrder) (float64, bool, error) {
	num, err := r.u32(off, bo)
	if err != nil {
		return 0, false, err
	}
	den, err := r.u32(off+4, bo)
	if err != nil {
		return 0, false, err
	}
	if den == 0 {
		return 0, false, nil
	}
	return float64(num) / float64(den), true, nil
}
