package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition_ToByteOffset(t *testing.T) {
	tests := []struct {
		name     string
		position Position
		expected int64
		wantErr  bool
	}{
		{name: "first sector", position: CHS(0, 0, 1), expected: 0},
		{name: "volume label", position: CHS(0, 0, 7), expected: 6 * SectorSize},
		{name: "side one of cylinder zero", position: CHS(0, 1, 1), expected: 16 * SectorSize},
		{name: "cylinder one side zero", position: CHS(1, 0, 1), expected: 16 * SectorSize},
		{name: "cylinder two side one", position: CHS(2, 1, 3), expected: (4*16 + 16 + 2) * SectorSize},
		{name: "linear offset", position: Offset(2048), expected: 2048},
		{name: "sector zero", position: CHS(0, 0, 0), wantErr: true},
		{name: "negative cylinder", position: CHS(-1, 0, 1), wantErr: true},
		{name: "side two", position: CHS(0, 2, 1), wantErr: true},
		{name: "negative side", position: CHS(0, -1, 1), wantErr: true},
		{name: "negative offset", position: Offset(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.position.ToByteOffset()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPosition_StrictlyIncreasingInSector(t *testing.T) {
	for cyl := 0; cyl < 4; cyl++ {
		for side := 0; side <= 1; side++ {
			previous := int64(-1)
			for sector := 1; sector <= 32; sector++ {
				offset, err := CHS(cyl, side, sector).ToByteOffset()
				require.NoError(t, err)
				assert.Greater(t, offset, previous, "cyl %d side %d sector %d", cyl, side, sector)

				again, err := CHS(cyl, side, sector).ToByteOffset()
				require.NoError(t, err)
				assert.Equal(t, offset, again)
				previous = offset
			}
		}
	}
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "cyl 0 side 0 sector 7", VolumeLabelPosition.String())
	assert.Equal(t, "offset 512", Offset(512).String())
	assert.True(t, Offset(0).IsLinear())
	assert.False(t, CHS(0, 0, 1).IsLinear())
}
