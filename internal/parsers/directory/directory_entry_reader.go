package directory

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-ta1600/internal/parsers/allocation"
	"github.com/deploymenttheory/go-ta1600/internal/types"
)

// Fixed field offsets (0-based) of a directory entry record
const (
	organizationOffset = 0
	privilegeOffset    = 2
	flagsOffset        = 4
	blockSizeOffset    = 6
	recordLengthOffset = 8
	fixedFieldsSize    = 10
)

// Entry is one decoded directory slot.
type Entry struct {
	Name         string
	Organization types.Organization
	Privilege    uint16
	Flags        int8
	BlockSize    uint16
	RecordLength uint16
	Chain        types.AllocationChain
	TotalUnits   int

	tree  *Tree
	child *Tree
}

// DecodeEntry decodes the record of the slot called name. tree is the
// directory level holding the entry and may be nil. A record shorter than the
// fixed fields fails with a *types.DirectoryDecodeError.
func DecodeEntry(tree *Tree, name string, record []byte) (*Entry, error) {
	if len(record) < fixedFieldsSize {
		return nil, &types.DirectoryDecodeError{Name: name, Level: tree.Level(),
			Err: fmt.Errorf("%w: entry record is %d bytes, need at least %d", types.ErrTruncatedRecord, len(record), fixedFieldsSize)}
	}

	chain := allocation.Decode(record)
	return &Entry{
		Name:         name,
		Organization: types.Organization(int8(record[organizationOffset])),
		Privilege:    binary.BigEndian.Uint16(record[privilegeOffset : privilegeOffset+2]),
		Flags:        int8(record[flagsOffset]),
		BlockSize:    binary.BigEndian.Uint16(record[blockSizeOffset : blockSizeOffset+2]),
		RecordLength: binary.BigEndian.Uint16(record[recordLengthOffset : recordLengthOffset+2]),
		Chain:        chain,
		TotalUnits:   allocation.TotalUnits(chain),
		tree:         tree,
	}, nil
}

// OrganizationLabel returns SEQ, REL, INX, DIR, PGM, VCT or "unknown"
func (e *Entry) OrganizationLabel() string {
	return e.Organization.Label()
}

// DisplayName returns NAME.ORG
func (e *Entry) DisplayName() string {
	return e.Name + "." + e.OrganizationLabel()
}

// IsDirectory reports whether the entry describes a subdirectory
func (e *Entry) IsDirectory() bool {
	return e.Organization == types.OrgDirectory
}

// IsSystem reports whether the entry is a system (VCT) file
func (e *Entry) IsSystem() bool {
	return e.Organization == types.OrgSystem
}

// IsDeleted reports whether the deleted flag is set
func (e *Entry) IsDeleted() bool {
	return e.Flags&types.EntryFlagDeleted != 0
}

// IsCompressed reports whether the compressed flag is set
func (e *Entry) IsCompressed() bool {
	return e.Flags&types.EntryFlagCompressed != 0
}

// TypeFlags returns the space separated flag names (DEL, COMP).
func (e *Entry) TypeFlags() string {
	var flags []string
	if e.IsDeleted() {
		flags = append(flags, "DEL")
	}
	if e.IsCompressed() {
		flags = append(flags, "COMP")
	}
	return strings.Join(flags, " ")
}

// Level returns the nesting level of the directory holding the entry
func (e *Entry) Level() int {
	if e.tree == nil {
		return 0
	}
	return e.tree.level
}

// Tree returns the directory level holding the entry
func (e *Entry) Tree() *Tree {
	return e.tree
}

// Child returns the expanded subdirectory of a directory entry, if any
func (e *Entry) Child() *Tree {
	return e.child
}

// FirstUnit returns the start unit of the first allocation run
func (e *Entry) FirstUnit() uint16 {
	return e.Chain.FirstStart()
}

// Size returns the number of bytes allocated to the entry
func (e *Entry) Size() int64 {
	return e.Chain.Size()
}
