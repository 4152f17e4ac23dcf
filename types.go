package imgprobe

// Format represents a supported image container format.
type Format string

const (
	FormatUnknown Format = ""
	FormatBMP     Format = "BMP"
	FormatPNG     Format = "PNG"
	FormatJPEG    Format = "JPEG"
	FormatGIF     Format = "GIF"
	FormatTIFF    Format = "TIFF"
	FormatPCX     Format = "PCX"
)

// defaultDPI is reported whenever a file carries no resolution metadata.
const defaultDPI = 72

// MetadataRecord contains the structural metadata extracted from an image
// file header. Decoding never touches pixel data.
//
// A record is either fully populated (Error empty) or zero-valued
// (Error set, all numeric fields 0, Compression "N/A"), never a mix.
type MetadataRecord struct {
	// Filename is the caller-supplied identifier. It is echoed back
	// unmodified and never validated.
	Filename string `json:"filename"`

	// Width and Height are the image dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// ResolutionX and ResolutionY are in dots per inch.
	ResolutionX int `json:"resolutionX"`
	ResolutionY int `json:"resolutionY"`

	// ColorDepth is the total bits per pixel across all channels.
	ColorDepth int `json:"colorDepth"`

	// Compression is a human-readable label, e.g. "None (BI_RGB)",
	// "Deflate", "LZW", or "Unknown (<code>)". Never empty.
	Compression string `json:"compression"`

	// Format is the short format tag (BMP, PNG, JPEG, GIF, TIFF, PCX),
	// or the raw uppercased extension when decoding failed.
	Format Format `json:"format"`

	// Error describes why decoding failed. Empty on success.
	Error string `json:"error,omitempty"`
}

// newRecord allocates a success record with the 72 DPI default applied.
func newRecord(filename string, format Format) MetadataRecord {
	return MetadataRecord{
		Filename:    filename,
		ResolutionX: defaultDPI,
		ResolutionY: defaultDPI,
		Format:      format,
	}
}

// errorRecord builds the zero-valued failure record for a file.
func errorRecord(filename string, format Format, err error) MetadataRecord {
	return MetadataRecord{
		Filename:    filename,
		Compression: "N/A",
		Format:      format,
		Error:       err.Error(),
	}
}
