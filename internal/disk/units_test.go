package disk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-ta1600/internal/testutil"
	"github.com/deploymenttheory/go-ta1600/internal/types"
)

func TestReader_ReadUnits(t *testing.T) {
	r := newSampleReader(t)

	data, err := r.ReadUnits(types.AllocationUnit{Count: 2, Start: 14})
	require.NoError(t, err)
	assert.Equal(t, testutil.Pattern(1024, 1), data)
	assert.Equal(t, int64(12*types.AllocationUnitSize), r.Position())

	// the system unit is the first sector group after the reserved area
	data, err = r.ReadUnits(types.AllocationUnit{Count: 1, Start: types.SystemDirectoryUnit})
	require.NoError(t, err)
	assert.Len(t, data, types.AllocationUnitSize)
}

func TestReader_ReadUnits_Errors(t *testing.T) {
	r := newSampleReader(t)

	_, err := r.ReadUnits(types.AllocationUnit{Count: 1, Start: 2})
	assert.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = r.ReadUnits(types.AllocationUnit{Count: 1, Start: 1000})
	assert.ErrorIs(t, err, types.ErrSeek)

	_, err = r.ReadUnits(types.AllocationUnit{Count: 4, Start: 70})
	assert.ErrorIs(t, err, types.ErrTruncatedRecord)

	_, err = r.ReadUnits(types.AllocationUnit{Count: 0xFFFF, Start: 20})
	assert.ErrorIs(t, err, types.ErrTruncatedRecord)
}

func TestReader_UnitGeometry(t *testing.T) {
	r := newSampleReader(t)

	assert.Equal(t, 512, r.UnitSize())
	assert.Equal(t, 68, r.TotalUnits())

	tests := []struct {
		name string
		unit types.AllocationUnit
		want bool
	}{
		{"first unit", types.AllocationUnit{Count: 1, Start: 4}, true},
		{"last unit", types.AllocationUnit{Count: 1, Start: 71}, true},
		{"past the end", types.AllocationUnit{Count: 2, Start: 71}, false},
		{"reserved area", types.AllocationUnit{Count: 1, Start: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.CanReadUnits(tt.unit))
		})
	}
}
