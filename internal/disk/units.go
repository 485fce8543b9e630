package disk

import (
	"fmt"

	"github.com/deploymenttheory/go-ta1600/internal/parsers/allocation"
	"github.com/deploymenttheory/go-ta1600/internal/types"
)

// ReadUnits seeks to the first byte of unit and reads the whole run
func (r *Reader) ReadUnits(unit types.AllocationUnit) ([]byte, error) {
	if unit.Start < types.AllocationUnitBase {
		return nil, fmt.Errorf("%w: allocation unit %d is below the first unit %d", types.ErrInvalidAddress, unit.Start, types.AllocationUnitBase)
	}
	position, size := allocation.ByteRange(unit)
	return r.ReadRecordAt(types.Offset(position), int(size))
}

// UnitSize returns the size of one allocation unit
func (r *Reader) UnitSize() int {
	return types.AllocationUnitSize
}

// TotalUnits returns the number of whole allocation units the image holds,
// counting the reserved area before the first addressable unit
func (r *Reader) TotalUnits() int {
	return int(r.size / types.AllocationUnitSize)
}

// CanReadUnits reports whether unit lies entirely inside the image
func (r *Reader) CanReadUnits(unit types.AllocationUnit) bool {
	if unit.Start < types.AllocationUnitBase {
		return false
	}
	position, size := allocation.ByteRange(unit)
	return position+size <= r.size
}
