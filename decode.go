package imgprobe

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// decodeFunc is the signature shared by all format decoders. Decoders
// are pure: same bytes and name always yield the same record.
type decodeFunc func(data []byte, filename string) (MetadataRecord, error)

var decodersByExt = map[string]decodeFunc{
	"bmp":  decodeBMP,
	"png":  decodePNG,
	"jpg":  decodeJPEG,
	"jpeg": decodeJPEG,
	"gif":  decodeGIF,
	"tif":  decodeTIFF,
	"tiff": decodeTIFF,
	"pcx":  decodePCX,
}

// Decode extracts header metadata from an in-memory image file. The
// decoder is selected by the filename's extension; the content is only
// checked against that format's signature, never re-sniffed.
//
// Decode never fails: any decoding problem (unsupported extension, bad
// signature, truncated header) is folded into the returned record, with
// Error set, all numeric fields zero, and Format carrying the
// uppercased extension. A batch of N files therefore always yields N
// records.
func Decode(data []byte, filename string) MetadataRecord {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	decode, ok := decodersByExt[ext]
	if !ok {
		err := fmt.Errorf("%w: .%s", ErrUnsupportedFormat, ext)
		return errorRecord(filename, Format(strings.ToUpper(ext)), err)
	}

	md, err := decode(data, filename)
	if err != nil {
		return errorRecord(filename, Format(strings.ToUpper(ext)), err)
	}
	return md
}

// DecodeFile reads a file from disk and decodes its header. A read
// failure is reported the same way as a decode failure, through the
// record's Error field.
func DecodeFile(path string) MetadataRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		return errorRecord(path, Format(strings.ToUpper(ext)), err)
	}
	return Decode(data, path)
}

// Input pairs a file's bytes with its caller-supplied name.
type Input struct {
	Filename string
	Data     []byte
}

// DecodeAll decodes a batch of files concurrently. Record i always
// corresponds to inputs[i]; beyond that there is no ordering, since the
// decoders are pure and share nothing.
func DecodeAll(inputs []Input) []MetadataRecord {
	records := make([]MetadataRecord, len(inputs))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(inputs) {
		workers = len(inputs)
	}
	if workers < 1 {
		return records
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				records[i] = Decode(inputs[i].Data, inputs[i].Filename)
			}
		}()
	}
	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return records
}
