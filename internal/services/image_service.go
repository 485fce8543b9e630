package services

import (
	"fmt"
	"io"
	"iter"

	"github.com/deploymenttheory/go-ta1600/internal/disk"
	"github.com/deploymenttheory/go-ta1600/internal/interfaces"
	"github.com/deploymenttheory/go-ta1600/internal/parsers/directory"
	"github.com/deploymenttheory/go-ta1600/internal/parsers/volume"
	"github.com/deploymenttheory/go-ta1600/internal/types"
)

// ImageService ties the volume label, directory tree and file content of one
// image together.
type ImageService struct {
	reader interfaces.RecordReader
	closer io.Closer
	config *disk.ImageConfig
	volume *types.VolumeLabel
	tree   *directory.Tree
}

// OpenImage opens the image at path and decodes its label and directory
// tree. A nil config selects the defaults.
func OpenImage(path string, config *disk.ImageConfig) (*ImageService, error) {
	if config == nil {
		config = disk.DefaultImageConfig()
	}

	img, err := disk.Open(path, config)
	if err != nil {
		return nil, err
	}

	svc, err := NewImageService(img, config)
	if err != nil {
		img.Close()
		return nil, err
	}
	svc.closer = img
	return svc, nil
}

// NewImageService decodes an image already available through reader. A
// missing volume label or an unreadable system directory is fatal; problems
// inside the tree are kept on the tree.
func NewImageService(reader interfaces.RecordReader, config *disk.ImageConfig) (*ImageService, error) {
	if reader == nil {
		return nil, fmt.Errorf("record reader cannot be nil")
	}
	if config == nil {
		config = disk.DefaultImageConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	labels, err := volume.NewVolumeLabelReader(reader, config.OwnerWidth)
	if err != nil {
		return nil, err
	}
	label, err := labels.Decode()
	if err != nil {
		return nil, err
	}

	tree, err := directory.BuildRoot(reader, directory.WithCycleGuard(config.GuardCycles))
	if err != nil {
		return nil, err
	}

	return &ImageService{
		reader: reader,
		config: config,
		volume: label,
		tree:   tree,
	}, nil
}

// Volume returns the decoded VOL1 label
func (s *ImageService) Volume() *types.VolumeLabel {
	return s.volume
}

// Tree returns the root directory tree
func (s *ImageService) Tree() *directory.Tree {
	return s.tree
}

// Config returns the configuration the image was decoded with
func (s *ImageService) Config() *disk.ImageConfig {
	return s.config
}

// Find looks up an entry by display name
func (s *ImageService) Find(displayName string) (*directory.Entry, error) {
	return s.tree.Find(displayName)
}

// Extract streams the content of entry from this image
func (s *ImageService) Extract(entry *directory.Entry) iter.Seq2[[]byte, error] {
	return Extract(entry, s.reader)
}

// WriteTo copies the content of entry to w
func (s *ImageService) WriteTo(entry *directory.Entry, w io.Writer) (int64, error) {
	return WriteTo(entry, s.reader, w)
}

// Close releases the image file, if the service opened one
func (s *ImageService) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
