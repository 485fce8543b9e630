package allocation

import (
	"encoding/binary"
	"iter"

	"github.com/deploymenttheory/go-ta1600/internal/types"
)

// Units returns a lazy sequence over the allocation runs embedded in record.
// The list starts at byte 28 and holds big-endian (count, start) pairs; it
// ends at a blank sentinel byte, at a zero count, or at the end of the record.
// The sequence can be ranged over any number of times.
func Units(record []byte) iter.Seq[types.AllocationUnit] {
	return func(yield func(types.AllocationUnit) bool) {
		for offset := types.AllocationChainBase; offset+types.AllocationPairSize <= len(record); offset += types.AllocationPairSize {
			if record[offset] == types.BlankSentinel {
				return
			}
			unit := types.AllocationUnit{
				Count: binary.BigEndian.Uint16(record[offset : offset+2]),
				Start: binary.BigEndian.Uint16(record[offset+2 : offset+4]),
			}
			if unit.Count == 0 {
				return
			}
			if !yield(unit) {
				return
			}
		}
	}
}

// Decode collects the allocation runs of record
func Decode(record []byte) types.AllocationChain {
	var chain types.AllocationChain
	for unit := range Units(record) {
		chain = append(chain, unit)
	}
	return chain
}

// TotalUnits returns the number of allocation units covered by chain
func TotalUnits(chain types.AllocationChain) int {
	return chain.TotalUnits()
}

// ByteRange returns the image position and size in bytes of a run
func ByteRange(unit types.AllocationUnit) (int64, int64) {
	return unit.Position(), unit.Size()
}
