package types

import "fmt"

// Geometry of a TA 1600 / ECMA-57 diskette image. The image is a plain dump
// of 128 byte sectors, 16 sectors per cylinder face.
const (
	SectorSize         = 128
	SectorsPerCylinder = 16
	BytesPerCylinder   = SectorSize * SectorsPerCylinder
)

// Position addresses a location inside an image, either as a structured
// cylinder/side/sector triple or as an already linear byte offset.
type Position struct {
	Cylinder int
	Side     int
	// Sector is 1-based.
	Sector int

	offset int64
	linear bool
}

// CHS returns a structured position.
func CHS(cylinder, side, sector int) Position {
	return Position{Cylinder: cylinder, Side: side, Sector: sector}
}

// Offset returns a linear position.
func Offset(offset int64) Position {
	return Position{offset: offset, linear: true}
}

// IsLinear reports whether the position was built from a raw byte offset.
func (p Position) IsLinear() bool {
	return p.linear
}

// ToByteOffset converts the position into a linear byte offset within the image.
func (p Position) ToByteOffset() (int64, error) {
	if p.linear {
		if p.offset < 0 {
			return 0, fmt.Errorf("%w: negative offset %d", ErrInvalidAddress, p.offset)
		}
		return p.offset, nil
	}

	if p.Cylinder < 0 || p.Side < 0 || p.Side > 1 || p.Sector < 1 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAddress, p)
	}

	sectors := (p.Cylinder*(p.Side+1))*SectorsPerCylinder + p.Side*SectorsPerCylinder + (p.Sector - 1)
	return int64(sectors) * SectorSize, nil
}

// String returns a human readable representation of the position
func (p Position) String() string {
	if p.linear {
		return fmt.Sprintf("offset %d", p.offset)
	}
	return fmt.Sprintf("cyl %d side %d sector %d", p.Cylinder, p.Side, p.Sector)
}
