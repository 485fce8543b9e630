// File: internal/interfaces/record_reader.go
package interfaces

import (
	"github.com/deploymenttheory/go-ta1600/internal/types"
)

// RecordReader provides positioned access to the fixed size records of an
// image. Field accessors operate on the record returned by the most recent
// read and are not safe for interleaved use.
type RecordReader interface {
	UnitReader

	// Seek positions the reader at the given address
	Seek(position types.Position) error

	// ReadRecord reads exactly size bytes from the current position
	ReadRecord(size int) ([]byte, error)

	// ReadRecordAt seeks to position and reads exactly size bytes
	ReadRecordAt(position types.Position, size int) ([]byte, error)

	// Field returns length bytes of the current record starting at the 1-based offset start
	Field(start, length int) ([]byte, error)

	// TextField decodes a field and trims surrounding white space
	TextField(start, length int) (string, error)

	// RawTextField decodes a field without trimming
	RawTextField(start, length int) (string, error)

	// DigitField decodes a field and parses its leading decimal digits
	DigitField(start, length int) (int, error)

	// DateField decodes a six character YYMMDD field
	DateField(start int) (types.Date, error)

	// FindLabel reads one record (after seeking to at, when given) and returns
	// the label number if the record carries the expected identifier
	FindLabel(identifier string, at *types.Position) (string, bool, error)

	// DecodeText translates raw image text through the reader's codec
	DecodeText(data []byte) string

	// Size returns the size of the underlying image in bytes
	Size() int64
}
