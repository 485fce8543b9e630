package services

import (
	"io"
	"iter"

	"github.com/deploymenttheory/go-ta1600/internal/parsers/directory"
	"github.com/deploymenttheory/go-ta1600/internal/types"
)

// ImageReader is the read side of an opened image
type ImageReader interface {
	Volume() *types.VolumeLabel
	Tree() *directory.Tree
	Find(displayName string) (*directory.Entry, error)
	Extract(entry *directory.Entry) iter.Seq2[[]byte, error]
	WriteTo(entry *directory.Entry, w io.Writer) (int64, error)
	Close() error
}

var _ ImageReader = (*ImageService)(nil)
