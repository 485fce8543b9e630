// Package testutil builds synthetic diskette images for tests.
package testutil

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
	"golang.org/x/text/encoding/charmap"

	"github.com/deploymenttheory/go-ta1600/internal/types"
)

// DefaultImageSize covers 64 allocation units past the reserved area.
const DefaultImageSize = 68 * types.AllocationUnitSize

// Volume describes the VOL1 fields written by SetVolumeLabel.
type Volume struct {
	Identifier     string
	Accessibility  string
	Owner          string
	Surface        string
	RecordLength   string
	SectorSequence string
	Allocation     string
	Version        string
}

// Entry describes one directory slot written by WriteDirectory.
type Entry struct {
	Name         string
	Organization types.Organization
	Privilege    uint16
	Flags        int8
	BlockSize    uint16
	RecordLength uint16
	Chain        types.AllocationChain
}

// ImageBuilder assembles an in-memory image.
type ImageBuilder struct {
	t    *testing.T
	data []byte
}

// NewImageBuilder creates a blank image of size bytes
func NewImageBuilder(t *testing.T, size int) *ImageBuilder {
	t.Helper()
	require.Greater(t, size, 0, "image size must be positive")
	return &ImageBuilder{t: t, data: make([]byte, size)}
}

// EBCDIC encodes s using Code Page 037, padded with blanks to width. A width
// of zero leaves the encoded text unpadded.
func EBCDIC(t *testing.T, s string, width int) []byte {
	t.Helper()
	encoded, err := charmap.CodePage037.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err, "cannot encode %q", s)
	if width == 0 {
		return encoded
	}
	require.LessOrEqual(t, len(encoded), width, "%q does not fit in %d bytes", s, width)
	out := make([]byte, width)
	for i := range out {
		out[i] = types.BlankSentinel
	}
	copy(out, encoded)
	return out
}

// Put copies raw bytes at offset
func (b *ImageBuilder) Put(offset int64, data []byte) *ImageBuilder {
	b.t.Helper()
	require.LessOrEqual(b.t, offset+int64(len(data)), int64(len(b.data)), "write past end of image")
	copy(b.data[offset:], data)
	return b
}

// SetVolumeLabel writes a VOL1 record at its fixed position.
func (b *ImageBuilder) SetVolumeLabel(v Volume) *ImageBuilder {
	b.t.Helper()
	return b.SetLabelRecord("VOL1", v)
}

// SetLabelRecord writes a label record with an arbitrary identifier and number.
func (b *ImageBuilder) SetLabelRecord(label string, v Volume) *ImageBuilder {
	b.t.Helper()
	record := EBCDIC(b.t, "", types.SectorSize)
	copy(record[0:4], EBCDIC(b.t, label, 4))
	copy(record[4:10], EBCDIC(b.t, v.Identifier, 6))
	copy(record[10:11], EBCDIC(b.t, v.Accessibility, 1))
	copy(record[37:51], EBCDIC(b.t, v.Owner, 14))
	copy(record[71:72], EBCDIC(b.t, v.Surface, 1))
	copy(record[75:76], EBCDIC(b.t, v.RecordLength, 1))
	copy(record[76:78], EBCDIC(b.t, v.SectorSequence, 2))
	copy(record[78:79], EBCDIC(b.t, v.Allocation, 1))
	copy(record[79:80], EBCDIC(b.t, v.Version, 1))

	offset, err := types.VolumeLabelPosition.ToByteOffset()
	require.NoError(b.t, err)
	return b.Put(offset, record)
}

// ChainRecord encodes a 128 byte record carrying chain at the allocation
// offset, terminated by the blank sentinel when space remains.
func ChainRecord(chain types.AllocationChain) []byte {
	record := make([]byte, types.SectorSize)
	offset := types.AllocationChainBase
	for _, unit := range chain {
		binary.BigEndian.PutUint16(record[offset:], unit.Count)
		binary.BigEndian.PutUint16(record[offset+2:], unit.Start)
		offset += types.AllocationPairSize
	}
	if offset < len(record) {
		record[offset] = types.BlankSentinel
	}
	return record
}

// SetSystemChain writes the root directory chain into the system unit.
func (b *ImageBuilder) SetSystemChain(chain types.AllocationChain) *ImageBuilder {
	b.t.Helper()
	system := types.AllocationUnit{Count: 1, Start: types.SystemDirectoryUnit}
	return b.Put(system.Position()+types.SystemChainOffset, ChainRecord(chain))
}

// EntryRecord encodes the 128 byte record of a directory entry
func EntryRecord(e Entry) []byte {
	record := ChainRecord(e.Chain)
	record[0] = byte(e.Organization)
	binary.BigEndian.PutUint16(record[2:], e.Privilege)
	record[4] = byte(e.Flags)
	binary.BigEndian.PutUint16(record[6:], e.BlockSize)
	binary.BigEndian.PutUint16(record[8:], e.RecordLength)
	return record
}

// DirectoryBlob lays out entries as a directory blob of size bytes.
func DirectoryBlob(t *testing.T, entries []Entry, size int) []byte {
	t.Helper()
	require.LessOrEqual(t, len(entries), types.DirectorySlots)
	blob := make([]byte, size)
	for i, e := range entries {
		nameOffset := i * types.DirectoryNameSize
		copy(blob[nameOffset:], EBCDIC(t, e.Name, types.DirectoryNameSize))

		recordOffset := (i + 1) * types.DirectoryStride
		require.LessOrEqual(t, recordOffset+types.DirectoryRecordSize, size, "blob too small for entry %d", i)
		copy(blob[recordOffset:], EntryRecord(e))
	}
	return blob
}

// WriteDirectory writes entries as a contiguous directory starting at unit
// start, sized to hold every slot used.
func (b *ImageBuilder) WriteDirectory(start uint16, entries []Entry) types.AllocationChain {
	b.t.Helper()
	need := (len(entries)+1)*types.DirectoryStride + types.DirectoryRecordSize
	units := (need + types.AllocationUnitSize - 1) / types.AllocationUnitSize
	chain := types.AllocationChain{{Count: uint16(units), Start: start}}
	b.Put(chain[0].Position(), DirectoryBlob(b.t, entries, units*types.AllocationUnitSize))
	return chain
}

// WriteUnits writes data at the position of unit start
func (b *ImageBuilder) WriteUnits(start uint16, data []byte) *ImageBuilder {
	b.t.Helper()
	unit := types.AllocationUnit{Start: start}
	return b.Put(unit.Position(), data)
}

// Bytes returns the raw image
func (b *ImageBuilder) Bytes() []byte {
	return b.data
}

// ReadSeeker returns an in-memory stream over the image
func (b *ImageBuilder) ReadSeeker() io.ReadWriteSeeker {
	return bytesextra.NewReadWriteSeeker(b.data)
}

// WriteFile stores the image in a temporary directory and returns its path
func (b *ImageBuilder) WriteFile(name string) string {
	b.t.Helper()
	path := filepath.Join(b.t.TempDir(), name)
	require.NoError(b.t, os.WriteFile(path, b.data, 0o644))
	return path
}

// Pattern returns size bytes of a recognisable repeating pattern
func Pattern(size int, seed byte) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = seed + byte(i%251)
	}
	return data
}

// SampleVolume is a well formed VOL1 label
func SampleVolume() Volume {
	return Volume{
		Identifier:     "ABCDEF",
		Accessibility:  " ",
		Owner:          "OWNER01EXTENDS",
		Surface:        "M",
		RecordLength:   "",
		SectorSequence: "01",
		Allocation:     "1",
		Version:        "W",
	}
}

// SampleImage builds a small image with a root directory holding a
// sequential file, a program and a subdirectory with one file of its own.
//
//	unit 10..12  root directory (3 entries)
//	unit 14      FOO.SEQ     2 units
//	unit 16      RUN.PGM     1 unit
//	unit 20..21  SUB.DIR     directory (1 entry)
//	unit 24      BAR.REL     1 unit
func SampleImage(t *testing.T) *ImageBuilder {
	t.Helper()
	b := NewImageBuilder(t, DefaultImageSize)
	b.SetVolumeLabel(SampleVolume())

	subChain := b.WriteDirectory(20, []Entry{
		{Name: "BAR", Organization: types.OrgRelative, Privilege: 1, BlockSize: 512, RecordLength: 64,
			Chain: types.AllocationChain{{Count: 1, Start: 24}}},
	})

	rootChain := b.WriteDirectory(10, []Entry{
		{Name: "FOO", Organization: types.OrgSequential, Privilege: 0x0102, Flags: 0x20, BlockSize: 256, RecordLength: 80,
			Chain: types.AllocationChain{{Count: 2, Start: 14}}},
		{Name: "SUB", Organization: types.OrgDirectory, BlockSize: 512, RecordLength: 256, Chain: subChain},
		{Name: "RUN", Organization: types.OrgProgram, Flags: 0x04, BlockSize: 512, RecordLength: 512,
			Chain: types.AllocationChain{{Count: 1, Start: 16}}},
	})
	b.SetSystemChain(rootChain)

	b.WriteUnits(14, Pattern(2*types.AllocationUnitSize, 1))
	b.WriteUnits(16, Pattern(types.AllocationUnitSize, 7))
	b.WriteUnits(24, Pattern(types.AllocationUnitSize, 13))
	return b
}
