package volume

import (
	"fmt"

	"github.com/deploymenttheory/go-ta1600/internal/interfaces"
	"github.com/deploymenttheory/go-ta1600/internal/types"
)

// VOL1 field offsets (1-based) and widths
const (
	identifierStart     = 5
	identifierWidth     = 6
	accessibilityStart  = 11
	ownerStart          = 38
	surfaceStart        = 72
	recordLengthStart   = 76
	sectorSequenceStart = 77
	sectorSequenceWidth = 2
	allocationStart     = 79
	versionStart        = 80
)

// VolumeLabelReader decodes the VOL1 record of an image
type VolumeLabelReader struct {
	reader     interfaces.RecordReader
	ownerWidth int
}

// NewVolumeLabelReader creates a VOL1 decoder. ownerWidth selects between the
// 7 and 14 byte owner field layouts.
func NewVolumeLabelReader(reader interfaces.RecordReader, ownerWidth int) (*VolumeLabelReader, error) {
	if reader == nil {
		return nil, fmt.Errorf("record reader cannot be nil")
	}
	if ownerWidth != types.OwnerWidthShort && ownerWidth != types.OwnerWidthLong {
		return nil, fmt.Errorf("unsupported owner width %d", ownerWidth)
	}
	return &VolumeLabelReader{reader: reader, ownerWidth: ownerWidth}, nil
}

// Decode reads the VOL1 record at its fixed position. Any record that is not
// labelled VOL1 fails with types.ErrVolumeLabelNotFound.
func (vr *VolumeLabelReader) Decode() (*types.VolumeLabel, error) {
	position := types.VolumeLabelPosition
	number, found, err := vr.reader.FindLabel(types.VolumeLabelIdentifier, &position)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrVolumeLabelNotFound, err)
	}
	if !found || number != types.VolumeLabelNumber {
		return nil, fmt.Errorf("%w at %s", types.ErrVolumeLabelNotFound, position)
	}

	label := &types.VolumeLabel{}
	fields := []struct {
		start, width int
		raw          bool
		dest         *string
	}{
		{identifierStart, identifierWidth, false, &label.Identifier},
		{accessibilityStart, 1, true, &label.Accessibility},
		{ownerStart, vr.ownerWidth, true, &label.Owner},
		{surfaceStart, 1, false, &label.SurfaceCode},
		{recordLengthStart, 1, false, &label.RecordLengthCode},
		{allocationStart, 1, false, &label.AllocationCode},
		{versionStart, 1, false, &label.Version},
	}

	for _, f := range fields {
		var value string
		if f.raw {
			value, err = vr.reader.RawTextField(f.start, f.width)
		} else {
			value, err = vr.reader.TextField(f.start, f.width)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode VOL1 field at %d: %w", f.start, err)
		}
		*f.dest = value
	}

	label.SectorSequence, err = vr.reader.DigitField(sectorSequenceStart, sectorSequenceWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sector sequence: %w", err)
	}

	label.Surface = types.SurfaceDescription(label.SurfaceCode)
	label.RecordLength = types.RecordLengthDescription(label.RecordLengthCode)
	label.Allocation = types.AllocationDescription(label.AllocationCode)

	return label, nil
}
