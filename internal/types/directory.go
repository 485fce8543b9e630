package types

import "fmt"

// Directory layout. A directory blob starts with a table of 16 eight byte
// names; the record for name i lives at (i+1)*DirectoryStride.
const (
	DirectoryNameSize   = 8
	DirectorySlots      = 16
	DirectoryNameTable  = DirectoryNameSize * DirectorySlots
	DirectoryStride     = 256
	DirectoryRecordSize = SectorSize

	// SystemChainOffset locates the root allocation chain inside the system unit.
	SystemChainOffset = 256
)

// Directory entry flag bits
const (
	EntryFlagDeleted    = 0x04
	EntryFlagCompressed = 0x20
)

// Organization is the file organization code of a directory entry.
type Organization int8

// Known organization codes.
const (
	OrgIndexed    Organization = 1
	OrgSequential Organization = 2
	OrgRelative   Organization = 4
	OrgProgram    Organization = 5
	OrgDirectory  Organization = 8
	OrgSystem     Organization = 9
)

var organizationLabels = map[Organization]string{
	OrgSequential: "SEQ",
	OrgRelative:   "REL",
	OrgIndexed:    "INX",
	OrgDirectory:  "DIR",
	OrgProgram:    "PGM",
	OrgSystem:     "VCT",
}

// Known reports whether the code is one of the documented organizations.
func (o Organization) Known() bool {
	_, ok := organizationLabels[o]
	return ok
}

// Label returns the three letter label, or "unknown" for codes outside the
// documented set.
func (o Organization) Label() string {
	if label, ok := organizationLabels[o]; ok {
		return label
	}
	return "unknown"
}

func (o Organization) String() string {
	if o.Known() {
		return o.Label()
	}
	return fmt.Sprintf("unknown(%d)", int8(o))
}
