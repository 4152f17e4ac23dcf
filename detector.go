package imgprobe

// DetectFormat identifies the image format by examining the magic
// bytes. It returns FormatUnknown if no signature matches.
//
// Decode trusts the filename extension, not the content; DetectFormat
// exists for callers that have bytes without a trustworthy name, or
// that want to flag files whose extension lies about their content.
func DetectFormat(data []byte) Format {
	if len(data) < 2 {
		return FormatUnknown
	}

	// BMP: "BM"
	if data[0] == 0x42 && data[1] == 0x4D {
		return FormatBMP
	}

	// PNG: 89 50 4E 47 0D 0A 1A 0A
	if len(data) >= 8 {
		match := true
		for i, b := range pngSignature {
			if data[i] != b {
				match = false
				break
			}
		}
		if match {
			return FormatPNG
		}
	}

	// JPEG: FF D8
	if data[0] == 0xFF && data[1] == 0xD8 {
		return FormatJPEG
	}

	// GIF: "GIF87a" or "GIF89a"
	if len(data) >= 6 {
		if data[0] == 'G' && data[1] == 'I' && data[2] == 'F' &&
			data[3] == '8' && (data[4] == '7' || data[4] == '9') && data[5] == 'a' {
			return FormatGIF
		}
	}

	// TIFF: "II" 2A 00 (little-endian) or "MM" 00 2A (big-endian)
	if len(data) >= 4 {
		if data[0] == 'I' && data[1] == 'I' && data[2] == 0x2A && data[3] == 0x00 {
			return FormatTIFF
		}
		if data[0] == 'M' && data[1] == 'M' && data[2] == 0x00 && data[3] == 0x2A {
			return FormatTIFF
		}
	}

	// PCX: manufacturer 0x0A plus a plausible version and encoding
	// byte. PCX has no real magic, so this is a heuristic.
	if len(data) >= 3 && data[0] == 0x0A && data[1] <= 5 && data[2] <= 1 {
		return FormatPCX
	}

	return FormatUnknown
}
