package types

// ADU geometry. Allocation data units are numbered from the start of the
// medium; the first four units precede the image data.
const (
	AllocationUnitSize  = 512
	AllocationUnitBase  = 4
	AllocationChainBase = 28
	AllocationPairSize  = 4

	// BlankSentinel terminates an allocation chain (EBCDIC space).
	BlankSentinel = 0x40

	// SystemDirectoryUnit is the reserved unit holding the root directory chain.
	SystemDirectoryUnit = 8
)

// AllocationUnit is one run of contiguous allocation data units.
type AllocationUnit struct {
	Count uint16 `json:"count" yaml:"count"`
	Start uint16 `json:"start" yaml:"start"`
}

// Size returns the size of the run in bytes
func (u AllocationUnit) Size() int64 {
	return int64(u.Count) * AllocationUnitSize
}

// Position returns the byte position of the run inside the image.
func (u AllocationUnit) Position() int64 {
	return (int64(u.Start) - AllocationUnitBase) * AllocationUnitSize
}

// AllocationChain is the ordered list of runs making up a file or directory.
type AllocationChain []AllocationUnit

// TotalUnits returns the sum of the counts of every run.
func (c AllocationChain) TotalUnits() int {
	total := 0
	for _, u := range c {
		total += int(u.Count)
	}
	return total
}

// Size returns the number of bytes covered by the chain
func (c AllocationChain) Size() int64 {
	return int64(c.TotalUnits()) * AllocationUnitSize
}

// FirstStart returns the start unit of the first run, or 0 for an empty chain.
func (c AllocationChain) FirstStart() uint16 {
	if len(c) == 0 {
		return 0
	}
	return c[0].Start
}
