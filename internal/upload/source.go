// Package upload streams large local media to the network in bounded
// chunks while reporting throttled progress.
package upload

import (
	"fmt"
	"io"
	"os"

	"github.com/RandomSci/CapstoneProject/pkg/types"
)

// SizeUnknown marks a source whose total size could not be determined
const SizeUnknown int64 = -1

// Source is a local media resource to be uploaded
type Source interface {
	// Open returns a fresh reader over the resource
	Open() (io.ReadCloser, error)
	// Size returns the total byte count, or SizeUnknown
	Size() int64
	// ContentType returns the MIME type of the resource
	ContentType() string
}

// FileSource is a Source over a local file path. The size is probed once:
// first by stat, then by seeking the open handle to the end; if both fail
// the size stays unknown and progress degrades to the indeterminate
// sentinel.
type FileSource struct {
	path        string
	contentType string
	size        int64
}

// NewFileSource probes path and returns a file-backed source
func NewFileSource(path, contentType string) *FileSource {
	if contentType == "" {
		contentType = "video/*"
	}
	return &FileSource{
		path:        path,
		contentType: contentType,
		size:        probeSize(path),
	}
}

// Open implements Source
func (f *FileSource) Open() (io.ReadCloser, error) {
	r, err := os.Open(f.path)
	if err != nil {
		return nil, types.NewUploadIOError(fmt.Sprintf("could not open %s", f.path), err)
	}
	return r, nil
}

// Size implements Source
func (f *FileSource) Size() int64 { return f.size }

// ContentType implements Source
func (f *FileSource) ContentType() string { return f.contentType }

func probeSize(path string) int64 {
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		return info.Size()
	}

	// Fallback: seek the opened handle to the end
	file, err := os.Open(path)
	if err != nil {
		return SizeUnknown
	}
	defer file.Close()

	end, err := file.Seek(0, io.SeekEnd)
	if err != nil || end <= 0 {
		return SizeUnknown
	}
	return end
}
