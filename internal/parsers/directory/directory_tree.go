package directory

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/boljen/go-bitmap"
	"github.com/hashicorp/go-multierror"

	"github.com/deploymenttheory/go-ta1600/internal/codec"
	"github.com/deploymenttheory/go-ta1600/internal/interfaces"
	"github.com/deploymenttheory/go-ta1600/internal/parsers/allocation"
	"github.com/deploymenttheory/go-ta1600/internal/types"
)

// ErrDirectoryCycle marks a subdirectory whose chain reuses units of one of
// its ancestors.
var ErrDirectoryCycle = errors.New("directory chain refers back to an ancestor")

// maxUnitStarts is the number of addressable allocation unit starts
const maxUnitStarts = 1 << 16

// Tree is one directory level. Its entry list is flattened depth first, so
// the entries of a subdirectory follow the subdirectory's own entry.
type Tree struct {
	level    int
	parent   *Tree
	chain    types.AllocationChain
	entries  []*Entry
	problems *multierror.Error
}

// Option configures tree construction
type Option func(*builder)

// WithCycleGuard enables or disables detection of subdirectories that point
// back into an ancestor's allocation units. It is enabled by default.
func WithCycleGuard(enabled bool) Option {
	return func(b *builder) {
		b.guard = enabled
	}
}

type builder struct {
	reader  interfaces.RecordReader
	guard   bool
	visited bitmap.Bitmap
}

func newBuilder(reader interfaces.RecordReader, opts []Option) *builder {
	b := &builder{reader: reader, guard: true}
	for _, opt := range opts {
		opt(b)
	}
	if b.guard {
		b.visited = bitmap.New(maxUnitStarts)
	}
	return b
}

// BuildRoot reads the system directory unit and builds the whole tree from
// the chain stored in its second quarter.
func BuildRoot(reader interfaces.RecordReader, opts ...Option) (*Tree, error) {
	system := types.AllocationChain{{Count: 1, Start: types.SystemDirectoryUnit}}
	blob, err := readChain(reader, system)
	if err != nil {
		return nil, fmt.Errorf("failed to read system directory unit: %w", err)
	}

	record := blob[types.SystemChainOffset : types.SystemChainOffset+types.SectorSize]
	b := newBuilder(reader, opts)
	b.enter(system)
	return b.build(allocation.Decode(record), nil), nil
}

// Build builds the directory stored in chain. parent only determines the
// nesting level and may be nil.
func Build(reader interfaces.RecordReader, chain types.AllocationChain, parent *Tree, opts ...Option) *Tree {
	return newBuilder(reader, opts).build(chain, parent)
}

func (b *builder) build(chain types.AllocationChain, parent *Tree) *Tree {
	t := &Tree{parent: parent, chain: chain}
	if parent != nil {
		t.level = parent.level + 1
	}
	if len(chain) == 0 {
		return t
	}

	entered := b.enter(chain)
	defer b.leave(entered)

	blob, err := readChain(b.reader, chain)
	truncated := err != nil
	if truncated {
		t.addProblem(&types.DirectoryDecodeError{Level: t.level, Slot: 0, Err: err})
	}

	for slot := 0; slot < types.DirectorySlots; slot++ {
		nameStart := slot * types.DirectoryNameSize
		if nameStart+types.DirectoryNameSize > len(blob) {
			if !truncated {
				t.addProblem(&types.DirectoryDecodeError{Level: t.level, Slot: slot,
					Err: fmt.Errorf("%w: name table ends at %d", types.ErrTruncatedRecord, len(blob))})
			}
			break
		}

		raw := blob[nameStart : nameStart+types.DirectoryNameSize]
		if codec.IsBlank(raw) {
			break
		}
		name := strings.TrimSpace(b.reader.DecodeText(raw))
		if name == "" {
			break
		}

		recordStart := (slot + 1) * types.DirectoryStride
		recordEnd := recordStart + types.DirectoryRecordSize
		if recordEnd > len(blob) {
			if !truncated {
				t.addProblem(&types.DirectoryDecodeError{Name: name, Level: t.level, Slot: slot,
					Err: fmt.Errorf("%w: entry record at %d beyond directory of %d bytes", types.ErrTruncatedRecord, recordStart, len(blob))})
			}
			break
		}

		entry, err := DecodeEntry(t, name, blob[recordStart:recordEnd])
		if err != nil {
			var decodeErr *types.DirectoryDecodeError
			if errors.As(err, &decodeErr) {
				decodeErr.Slot = slot
			}
			t.addProblem(err)
			break
		}
		t.entries = append(t.entries, entry)

		if !entry.IsDirectory() {
			continue
		}
		if b.revisits(entry.Chain) {
			t.addProblem(&types.DirectoryDecodeError{Name: name, Level: t.level, Slot: slot, Err: ErrDirectoryCycle})
			continue
		}

		child := b.build(entry.Chain, t)
		entry.child = child
		t.entries = append(t.entries, child.entries...)
		if child.problems != nil {
			t.problems = multierror.Append(t.problems, child.problems.Errors...)
		}
	}

	return t
}

// enter marks the starts of chain as part of the current traversal path and
// returns the starts that were newly marked.
func (b *builder) enter(chain types.AllocationChain) []uint16 {
	if !b.guard {
		return nil
	}
	var marked []uint16
	for _, unit := range chain {
		if !b.visited.Get(int(unit.Start)) {
			b.visited.Set(int(unit.Start), true)
			marked = append(marked, unit.Start)
		}
	}
	return marked
}

func (b *builder) leave(starts []uint16) {
	for _, start := range starts {
		b.visited.Set(int(start), false)
	}
}

func (b *builder) revisits(chain types.AllocationChain) bool {
	if !b.guard {
		return false
	}
	for _, unit := range chain {
		if b.visited.Get(int(unit.Start)) {
			return true
		}
	}
	return false
}

// readChain concatenates the byte ranges of every run in chain. On failure
// the bytes read so far are returned together with the error. The buffer is
// sized from the runs that fit in the image, never from the raw counts.
func readChain(reader interfaces.UnitReader, chain types.AllocationChain) ([]byte, error) {
	var capacity int64
	for _, unit := range chain {
		if !reader.CanReadUnits(unit) {
			break
		}
		capacity += unit.Size()
	}
	capacity = min(capacity, int64(reader.TotalUnits())*int64(reader.UnitSize()))

	blob := make([]byte, 0, capacity)
	for _, unit := range chain {
		data, err := reader.ReadUnits(unit)
		if err != nil {
			return blob, fmt.Errorf("failed to read allocation unit %d (+%d): %w", unit.Start, unit.Count, err)
		}
		blob = append(blob, data...)
	}
	return blob, nil
}

func (t *Tree) addProblem(err error) {
	t.problems = multierror.Append(t.problems, err)
}

// Level returns the nesting level, 0 for the root
func (t *Tree) Level() int {
	if t == nil {
		return 0
	}
	return t.level
}

// Parent returns the enclosing directory level, nil for the root
func (t *Tree) Parent() *Tree {
	return t.parent
}

// Chain returns the allocation chain the level was read from
func (t *Tree) Chain() types.AllocationChain {
	return t.chain
}

// Entries returns the flattened entry list in build order
func (t *Tree) Entries() []*Entry {
	return append([]*Entry(nil), t.entries...)
}

// Len returns the number of flattened entries
func (t *Tree) Len() int {
	return len(t.entries)
}

// All returns a restartable sequence over the flattened entries
func (t *Tree) All() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range t.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Find looks up an entry by its display name, ignoring case.
func (t *Tree) Find(displayName string) (*Entry, error) {
	wanted := strings.ToUpper(strings.TrimSpace(displayName))
	for _, e := range t.entries {
		if strings.ToUpper(e.DisplayName()) == wanted {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", types.ErrFileNotFound, displayName)
}

// TotalAllocated returns the first entry's start unit plus its unit count,
// the figure the legacy listing reports as TOTAL ADUS ALLOCATED. Only the
// first entry contributes.
func (t *Tree) TotalAllocated() int {
	if len(t.entries) == 0 {
		return 0
	}
	first := t.entries[0]
	return int(first.FirstUnit()) + first.TotalUnits
}

// Err returns the problems met while building the tree, or nil
func (t *Tree) Err() error {
	return t.problems.ErrorOrNil()
}

// Problems returns every problem met while building the tree
func (t *Tree) Problems() []error {
	return t.problems.WrappedErrors()
}
