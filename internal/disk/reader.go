package disk

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/deploymenttheory/go-ta1600/internal/codec"
	"github.com/deploymenttheory/go-ta1600/internal/types"
)

// Reader reads fixed size records from an image and extracts fields from the
// most recently read record. Every read must be preceded by an explicit seek.
type Reader struct {
	src      io.ReadSeeker
	size     int64
	position int64
	codec    *codec.Codec
	record   []byte
}

// NewReader wraps a seekable image source. A nil codec selects the default
// Code Page 037 codec.
func NewReader(src io.ReadSeeker, c *codec.Codec) (*Reader, error) {
	if src == nil {
		return nil, fmt.Errorf("image source cannot be nil")
	}
	if c == nil {
		c = codec.Default()
	}

	size, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to determine image size: %w", err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind image: %w", err)
	}

	return &Reader{
		src:   src,
		size:  size,
		codec: c,
	}, nil
}

// Size returns the image size in bytes
func (r *Reader) Size() int64 {
	return r.size
}

// Position returns the current linear position
func (r *Reader) Position() int64 {
	return r.position
}

// Codec returns the text codec used for field decoding
func (r *Reader) Codec() *codec.Codec {
	return r.codec
}

// DecodeText translates raw image text through the reader's codec
func (r *Reader) DecodeText(data []byte) string {
	return r.codec.Decode(data)
}

// Seek positions the reader. Positions past the end of the image fail with
// types.ErrSeek.
func (r *Reader) Seek(position types.Position) error {
	offset, err := position.ToByteOffset()
	if err != nil {
		return err
	}
	if offset > r.size {
		return fmt.Errorf("%w: %s is beyond image size %d", types.ErrSeek, position, r.size)
	}

	if _, err := r.src.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %v", types.ErrSeek, err)
	}
	r.position = offset
	return nil
}

// ReadRecord reads exactly size bytes from the current position. A size of
// zero or less reads one sector. Records that would run past the end of the
// image fail with types.ErrTruncatedRecord before any buffer is allocated.
func (r *Reader) ReadRecord(size int) ([]byte, error) {
	if size <= 0 {
		size = types.SectorSize
	}
	if remaining := r.size - r.position; int64(size) > remaining {
		r.record = nil
		return nil, fmt.Errorf("%w: got %d of %d bytes at offset %d", types.ErrTruncatedRecord, max(remaining, 0), size, r.position)
	}

	record := make([]byte, size)
	n, err := io.ReadFull(r.src, record)
	r.position += int64(n)
	if err != nil {
		r.record = nil
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: got %d of %d bytes at offset %d", types.ErrTruncatedRecord, n, size, r.position-int64(n))
		}
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	r.record = record
	return record, nil
}

// ReadRecordAt seeks to position and reads one record of the given size
func (r *Reader) ReadRecordAt(position types.Position, size int) ([]byte, error) {
	if err := r.Seek(position); err != nil {
		return nil, err
	}
	return r.ReadRecord(size)
}

// Field returns length bytes of the current record starting at the 1-based
// offset start.
func (r *Reader) Field(start, length int) ([]byte, error) {
	if start < 1 || length < 0 || start-1+length > len(r.record) {
		return nil, fmt.Errorf("%w: start %d length %d, record is %d bytes", types.ErrFieldOutOfRange, start, length, len(r.record))
	}
	return r.record[start-1 : start-1+length], nil
}

// RawTextField decodes a field without trimming
func (r *Reader) RawTextField(start, length int) (string, error) {
	field, err := r.Field(start, length)
	if err != nil {
		return "", err
	}
	return r.codec.Decode(field), nil
}

// TextField decodes a field and trims surrounding white space
func (r *Reader) TextField(start, length int) (string, error) {
	text, err := r.RawTextField(start, length)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// DigitField decodes a field and parses its leading decimal digits. Parsing
// stops at the first non-digit; a field without leading digits yields 0.
func (r *Reader) DigitField(start, length int) (int, error) {
	text, err := r.TextField(start, length)
	if err != nil {
		return 0, err
	}
	return leadingDigits(text), nil
}

// DateField decodes a YYMMDD field
func (r *Reader) DateField(start int) (types.Date, error) {
	text, err := r.TextField(start, 6)
	if err != nil {
		return types.Date{}, err
	}
	return types.ParseDate(text), nil
}

// FindLabel reads one record and checks for a three character identifier
// followed by a one character label number. When at is nil the record is read
// at the current position.
func (r *Reader) FindLabel(identifier string, at *types.Position) (string, bool, error) {
	if at != nil {
		if err := r.Seek(*at); err != nil {
			return "", false, err
		}
	}
	if _, err := r.ReadRecord(types.SectorSize); err != nil {
		return "", false, err
	}

	id, err := r.RawTextField(1, 3)
	if err != nil {
		return "", false, err
	}
	if id != identifier {
		return "", false, nil
	}

	number, err := r.RawTextField(4, 1)
	if err != nil {
		return "", false, err
	}
	return number, true, nil
}

func leadingDigits(text string) int {
	value := 0
	for _, ch := range text {
		if ch < '0' || ch > '9' {
			break
		}
		value = value*10 + int(ch-'0')
	}
	return value
}
