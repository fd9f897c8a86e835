package epub

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Archive provides read access to the entries of a zip-formatted EPUB.
// Entry paths are normalized (no leading "./", forward slashes) so lookups
// match regardless of how the producing tool wrote them.
type Archive struct {
	files  map[string]*zip.File
	names  []string
	closer io.Closer
}

// OpenArchive opens an EPUB file from disk.
func OpenArchive(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open epub: %w", err)
	}
	a := newArchive(&zr.Reader)
	a.closer = zr
	return a, nil
}

// NewArchive opens an EPUB held in memory.
func NewArchive(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open epub bytes: %w", err)
	}
	return newArchive(zr), nil
}

func newArchive(zr *zip.Reader) *Archive {
	a := &Archive{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		name := normalizePath(f.Name)
		if _, seen := a.files[name]; !seen {
			a.names = append(a.names, name)
		}
		a.files[name] = f
	}
	return a
}

// Close releases the underlying file handle, if any.
func (a *Archive) Close() error {
	if a == nil || a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Has reports whether an entry exists at the given path.
func (a *Archive) Has(path string) bool {
	_, ok := a.files[normalizePath(path)]
	return ok
}

// Names returns every entry path in archive order.
func (a *Archive) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// ReadBytes reads an entry's raw contents.
func (a *Archive) ReadBytes(path string) ([]byte, error) {
	f, ok := a.files[normalizePath(path)]
	if !ok {
		return nil, fmt.Errorf("entry not found: %s: %w", path, os.ErrNotExist)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry %s: %w", path, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// ReadText reads an entry and decodes it as a string.
func (a *Archive) ReadText(path string) (string, error) {
	data, err := a.ReadBytes(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// HasValidMimetype reports whether the archive carries the uncompressed
// "application/epub+zip" mimetype entry the EPUB OCF spec requires. Missing
// or malformed mimetypes are common in the wild, so callers treat this as
// advisory.
func (a *Archive) HasValidMimetype() bool {
	f, ok := a.files["mimetype"]
	if !ok {
		return false
	}
	if f.Method != zip.Store {
		return false
	}
	content, err := a.ReadText("mimetype")
	if err != nil {
		return false
	}
	return strings.TrimSpace(content) == "application/epub+zip"
}

func normalizePath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	return strings.TrimPrefix(path, "./")
}
