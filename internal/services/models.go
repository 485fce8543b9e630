package services

import (
	"github.com/deploymenttheory/go-ta1600/internal/parsers/directory"
)

// EntryInfo is the listing view of a directory entry
type EntryInfo struct {
	Level        int    `json:"level" yaml:"level" csv:"level"`
	Name         string `json:"name" yaml:"name" csv:"name"`
	Organization string `json:"organization" yaml:"organization" csv:"org"`
	Privilege    uint16 `json:"privilege" yaml:"privilege" csv:"priv"`
	BlockSize    uint16 `json:"block_size" yaml:"block_size" csv:"bksz"`
	RecordLength uint16 `json:"record_length" yaml:"record_length" csv:"lrec"`
	Units        int    `json:"units" yaml:"units" csv:"adus"`
	FirstUnit    uint16 `json:"first_unit" yaml:"first_unit" csv:"adu"`
	TypeFlags    string `json:"type_flags,omitempty" yaml:"type_flags,omitempty" csv:"type_flags"`
	Size         int64  `json:"size" yaml:"size" csv:"size"`
}

// NewEntryInfo builds the listing view of entry
func NewEntryInfo(entry *directory.Entry) EntryInfo {
	return EntryInfo{
		Level:        entry.Level(),
		Name:         entry.Name,
		Organization: entry.OrganizationLabel(),
		Privilege:    entry.Privilege,
		BlockSize:    entry.BlockSize,
		RecordLength: entry.RecordLength,
		Units:        entry.TotalUnits,
		FirstUnit:    entry.FirstUnit(),
		TypeFlags:    entry.TypeFlags(),
		Size:         entry.Size(),
	}
}

// ListEntries returns the listing view of every entry in tree order
func ListEntries(tree *directory.Tree) []EntryInfo {
	infos := make([]EntryInfo, 0, tree.Len())
	for entry := range tree.All() {
		infos = append(infos, NewEntryInfo(entry))
	}
	return infos
}
