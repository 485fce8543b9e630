package disk

import (
	"fmt"
	"os"
)

// Image is a diskette image file opened for reading.
type Image struct {
	*Reader
	file *os.File
	path string
}

// Open opens the image at path. A nil config selects the defaults.
func Open(path string, config *ImageConfig) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}
	if config == nil {
		config = DefaultImageConfig()
	}

	c, err := config.Codec()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	reader, err := NewReader(file, c)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &Image{
		Reader: reader,
		file:   file,
		path:   path,
	}, nil
}

// Path returns the path the image was opened from
func (img *Image) Path() string {
	return img.path
}

// Close closes the underlying file
func (img *Image) Close() error {
	if img.file == nil {
		return nil
	}
	err := img.file.Close()
	img.file = nil
	return err
}
