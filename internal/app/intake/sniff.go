package intake

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

const genericMIMEType = "application/octet-stream"

// Sniff builds a FileHandle for an upload, detecting the content type from
// the leading bytes of r. When detection is inconclusive the declared type
// is kept.
func Sniff(name string, size int64, r io.Reader, declared string) (FileHandle, error) {
	detected, err := mimetype.DetectReader(r)
	if err != nil {
		return FileHandle{}, fmt.Errorf("failed to detect content type of %s: %w", name, err)
	}

	mimeType := detected.String()
	if detected.Is(genericMIMEType) && declared != "" {
		mimeType = declared
	}

	return FileHandle{Name: name, Size: size, MIMEType: mimeType}, nil
}

// OpenFile builds a FileHandle for a file on disk.
func OpenFile(path string) (FileHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileHandle{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return FileHandle{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return FileHandle{}, fmt.Errorf("%s is a directory", path)
	}
	return Sniff(filepath.Base(path), info.Size(), f, "")
}
