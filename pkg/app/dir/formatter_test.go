package dir

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-ta1600/internal/services"
)

func sampleResponse() *Response {
	return &Response{
		Volume: &VolumeSummary{
			VolumeID:       "ABCDEF",
			Accessibility:  " ",
			Owner:          "OWNER01EXTENDS",
			Surface:        "ECMA-69 both sides",
			SectorLength:   "128",
			SectorSequence: 1,
			Allocation:     "double-sided",
		},
		Entries: []services.EntryInfo{
			{Level: 0, Name: "FOO", Organization: "SEQ", Privilege: 258, BlockSize: 256, RecordLength: 80, Units: 2, FirstUnit: 14, TypeFlags: "COMP", Size: 1024},
			{Level: 1, Name: "BAR", Organization: "REL", Privilege: 1, BlockSize: 512, RecordLength: 64, Units: 1, FirstUnit: 24, Size: 512},
		},
		TotalAllocated: 16,
	}
}

func TestFormatOutput_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatOutput(&buf, sampleResponse(), "table"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 12)

	labels := []string{"VOLUME ID:", "ACCESSIBILITY:", "OWNER:", "SURFACE:", "SECTOR LENGTH:", "SECTOR SEQUENCE:", "ALLOCATION:"}
	for i, label := range labels {
		assert.True(t, strings.HasPrefix(lines[i], label), "line %d: %q", i, lines[i])
	}
	assert.Contains(t, lines[0], "ABCDEF")
	assert.Equal(t, "", lines[7])
	assert.Equal(t, []string{"LEVEL", "NAME", "ORG", "PRIV", "BKSZ", "LREC", "ADUS", "ADU", "TYPE-FLAGS"}, strings.Fields(lines[8]))
	assert.Equal(t, []string{"0", "FOO", "SEQ", "258", "256", "80", "2", "14", "COMP"}, strings.Fields(lines[9]))
	assert.Equal(t, []string{"1", "BAR", "REL", "1", "512", "64", "1", "24"}, strings.Fields(lines[10]))
	assert.Equal(t, "TOTAL ADUS ALLOCATED: 16", lines[11])
}

func TestFormatOutput_TableWithoutVolume(t *testing.T) {
	resp := sampleResponse()
	resp.Volume = nil

	var buf bytes.Buffer
	require.NoError(t, FormatOutput(&buf, resp, "table"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "LEVEL"))
	assert.Equal(t, []string{"1", "BAR", "REL", "1", "512", "64", "1", "24"}, strings.Fields(lines[2]))
}

func TestFormatOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatOutput(&buf, sampleResponse(), "json"))

	var decoded Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 16, decoded.TotalAllocated)
	assert.Equal(t, "ABCDEF", decoded.Volume.VolumeID)
	assert.Len(t, decoded.Entries, 2)
}

func TestFormatOutput_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatOutput(&buf, sampleResponse(), "yaml"))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 16, decoded["total_adus_allocated"])
	assert.Contains(t, buf.String(), "volume_id: ABCDEF")
}

func TestFormatOutput_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatOutput(&buf, sampleResponse(), "csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "level,name,org,priv,bksz,lrec,adus,adu,type_flags,size", lines[0])
	assert.Equal(t, "0,FOO,SEQ,258,256,80,2,14,COMP,1024", lines[1])
}

func TestFormatOutput_Unsupported(t *testing.T) {
	err := FormatOutput(&bytes.Buffer{}, sampleResponse(), "xml")
	assert.Error(t, err)
}
