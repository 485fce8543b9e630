package services

import (
	"fmt"
	"io"
	"iter"

	"github.com/deploymenttheory/go-ta1600/internal/interfaces"
	"github.com/deploymenttheory/go-ta1600/internal/parsers/directory"
)

// Extract streams the content of entry one allocation unit run at a time.
// Each chunk is read with an explicit seek, so the sequence must not be
// interleaved with other reads on the same reader. Iteration stops after the
// first error; ranging again starts over at the first unit.
func Extract(entry *directory.Entry, reader interfaces.UnitReader) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		if entry == nil {
			yield(nil, fmt.Errorf("entry cannot be nil"))
			return
		}

		for _, unit := range entry.Chain {
			chunk, err := reader.ReadUnits(unit)
			if err != nil {
				yield(nil, fmt.Errorf("failed to read %s at unit %d: %w", entry.DisplayName(), unit.Start, err))
				return
			}
			if !yield(chunk, nil) {
				return
			}
		}
	}
}

// WriteTo copies the full content of entry to w and returns the number of
// bytes written.
func WriteTo(entry *directory.Entry, reader interfaces.UnitReader, w io.Writer) (int64, error) {
	var written int64
	for chunk, err := range Extract(entry, reader) {
		if err != nil {
			return written, err
		}
		n, err := w.Write(chunk)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("failed to write %s: %w", entry.DisplayName(), err)
		}
	}
	return written, nil
}
