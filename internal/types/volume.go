package types

// VolumeLabelIdentifier and VolumeLabelNumber identify the VOL1 record.
const (
	VolumeLabelIdentifier = "VOL"
	VolumeLabelNumber     = "1"
)

// Owner field widths. Both occur in the wild; the wider one includes the
// owner extension of the label.
const (
	OwnerWidthShort = 7
	OwnerWidthLong  = 14
)

// VolumeLabelPosition is the fixed address of the VOL1 record.
var VolumeLabelPosition = CHS(0, 0, 7)

// VolumeLabel is the decoded VOL1 record.
type VolumeLabel struct {
	Identifier       string `json:"identifier" yaml:"identifier"`
	Accessibility    string `json:"accessibility" yaml:"accessibility"`
	Owner            string `json:"owner" yaml:"owner"`
	SectorSequence   int    `json:"sector_sequence" yaml:"sector_sequence"`
	SurfaceCode      string `json:"surface_code" yaml:"surface_code"`
	Surface          string `json:"surface" yaml:"surface"`
	RecordLengthCode string `json:"record_length_code" yaml:"record_length_code"`
	RecordLength     string `json:"record_length" yaml:"record_length"`
	AllocationCode   string `json:"allocation_code" yaml:"allocation_code"`
	Allocation       string `json:"allocation" yaml:"allocation"`
	Version          string `json:"version" yaml:"version"`
}

// SurfaceDescription maps the surface indicator to a description. Unknown
// codes are returned unchanged.
func SurfaceDescription(code string) string {
	switch code {
	case "", "1":
		return "ECMA-54 single side"
	case "2":
		return "ECMA-59 both sides"
	case "M":
		return "ECMA-69 both sides"
	default:
		return code
	}
}

// RecordLengthDescription maps the record length code to the sector length.
func RecordLengthDescription(code string) string {
	switch code {
	case "":
		return "128"
	case "1":
		return "256"
	case "2":
		return "512"
	case "3":
		return "1024"
	default:
		return code
	}
}

// AllocationDescription maps the allocation code.
func AllocationDescription(code string) string {
	switch code {
	case "":
		return "single-sided"
	case "1":
		return "double-sided"
	default:
		return code
	}
}
