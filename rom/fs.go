package rom

import (
	"io"
	"os"
	"path/filepath"
)

// CreateFS defines a file system that supports creating files.
type CreateFS interface {
	// Create creates a new file for writing.
	Create(name string) (file io.WriteCloser, err error)
}

// DirFS creates files relative to a directory of the host file system.
// Absolute names are used as is.
type DirFS string

var _ CreateFS = DirFS("")

// Create creates or truncates a file.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	if len(dir) != 0 && !filepath.IsAbs(name) {
		name = filepath.Join(string(dir), name)
	}
	return os.Create(name)
}

// WriteFile formats the ROM, and only then creates the file and writes it.
func (rom *Rom) WriteFile(fsys CreateFS, name string, format Format) (err error) {
	data, err := rom.Bytes(format)
	if err != nil {
		return
	}

	ouf, err := fsys.Create(name)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	_, err = ouf.Write(data)
	return
}
