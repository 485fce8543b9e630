package dir

import (
	"github.com/deploymenttheory/go-ta1600/internal/disk"
	"github.com/deploymenttheory/go-ta1600/internal/services"
	"github.com/deploymenttheory/go-ta1600/internal/types"
	"github.com/deploymenttheory/go-ta1600/pkg/app"
)

// Request represents a directory listing request
type Request struct {
	ImagePath string
	Names     app.Selection
	Config    *disk.ImageConfig
}

// Response represents a directory listing
type Response struct {
	Volume         *VolumeSummary       `json:"volume,omitempty" yaml:"volume,omitempty"`
	Entries        []services.EntryInfo `json:"entries" yaml:"entries"`
	TotalAllocated int                  `json:"total_adus_allocated" yaml:"total_adus_allocated"`
	Missing        []string             `json:"missing,omitempty" yaml:"missing,omitempty"`
	Problems       []string             `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// VolumeSummary is the part of the volume label shown before a full listing
type VolumeSummary struct {
	VolumeID       string `json:"volume_id" yaml:"volume_id"`
	Accessibility  string `json:"accessibility" yaml:"accessibility"`
	Owner          string `json:"owner" yaml:"owner"`
	Surface        string `json:"surface" yaml:"surface"`
	SectorLength   string `json:"sector_length" yaml:"sector_length"`
	SectorSequence int    `json:"sector_sequence" yaml:"sector_sequence"`
	Allocation     string `json:"allocation" yaml:"allocation"`
}

// NewVolumeSummary extracts the summary fields of label
func NewVolumeSummary(label *types.VolumeLabel) *VolumeSummary {
	return &VolumeSummary{
		VolumeID:       label.Identifier,
		Accessibility:  label.Accessibility,
		Owner:          label.Owner,
		Surface:        label.Surface,
		SectorLength:   label.RecordLength,
		SectorSequence: label.SectorSequence,
		Allocation:     label.Allocation,
	}
}
