// Package rom reads raw program images. No object format is understood:
// the file is copied byte for byte into simulated memory.
package rom

import (
	"errors"
	"fmt"
	"os"
)

var ErrEmpty = errors.New("image is empty")

type Image struct {
	Path string
	Data []byte
}

// Load reads a raw program image.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read image: %w", err)
	}
	return New(path, data)
}

// New wraps an in-memory image. CRIS instructions are halfword aligned,
// so an odd-sized image is padded with a zero byte.
func New(name string, data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmpty)
	}
	if len(data)%2 != 0 {
		data = append(data[:len(data):len(data)], 0)
	}
	return &Image{Path: name, Data: data}, nil
}

func (i *Image) Size() uint32 {
	return uint32(len(i.Data))
}

// Fits reports whether the image fits in size bytes starting at offset.
func (i *Image) Fits(offset, size uint32) bool {
	return uint64(offset)+uint64(len(i.Data)) <= uint64(size)
}
