package imgprobe

import "errors"

var (
	// ErrInvalidSignature is returned when a file's magic bytes or
	// markers do not match its claimed format.
	ErrInvalidSignature = errors.New("imgprobe: invalid signature")

	// ErrOutOfRange is returned when a header field lies past the end
	// of the buffer, typically due to a truncated or corrupted file.
	ErrOutOfRange = errors.New("imgprobe: read out of range")

	// ErrUnsupportedFormat is returned when the file extension is not
	// in the recognized set.
	ErrUnsupportedFormat = errors.New("imgprobe: unsupported format")
)
