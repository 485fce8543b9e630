package extract

import (
	"github.com/deploymenttheory/go-ta1600/internal/disk"
	"github.com/deploymenttheory/go-ta1600/pkg/app"
)

// Request represents a copy request
type Request struct {
	ImagePath   string
	Names       app.Selection
	Destination string
	Overwrite   bool
	SkipDeleted bool
	Config      *disk.ImageConfig
}

// Response summarises a copy run
type Response struct {
	Files   []CopiedFile `json:"files" yaml:"files"`
	Skipped []string     `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Failed  []string     `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// CopiedFile describes one file written to the destination
type CopiedFile struct {
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
	Bytes int64  `json:"bytes" yaml:"bytes"`
}

// TotalBytes returns the number of bytes written across all files
func (r *Response) TotalBytes() int64 {
	var total int64
	for _, f := range r.Files {
		total += f.Bytes
	}
	return total
}
