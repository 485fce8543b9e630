// File: internal/interfaces/unit_reader.go
package interfaces

import (
	"github.com/deploymenttheory/go-ta1600/internal/types"
)

// UnitReader provides methods for reading allocation units
type UnitReader interface {
	// ReadUnits reads the whole run described by unit
	ReadUnits(unit types.AllocationUnit) ([]byte, error)

	// UnitSize returns the size of a single allocation unit in bytes
	UnitSize() int

	// TotalUnits returns the number of whole allocation units on the image
	TotalUnits() int

	// CanReadUnits checks if the run lies entirely inside the image
	CanReadUnits(unit types.AllocationUnit) bool
}
