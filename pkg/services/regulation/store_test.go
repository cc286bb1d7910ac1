package regulation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotsmatch/escort-engine/pkg/models/domain"
)

const sampleDataset = `
// header comment
[
  {
    "state": "Virginia", // trailing comment
    "road_type": "Interstate",
    "width_min": "12'0\"",
    "width_max": "14'6\"",
    "width_escorts": "1 Lead Car",
    "notes": "first // not a comment inside a string"
  },
  {
    "state": "Virginia",
    "road_type": "Interstate",
    "width_min": "14'7\"",
    "width_escorts": "1 Front, 1 Rear",
    "notes": "second"
  },
  {
    "state": "NC",
    "road_type": "Non-Interstate",
    "height_min": "14'6\"",
    "height_escorts": "1 High Pole"
  }
]
`

func TestLoadFrom(t *testing.T) {
	store := NewStore("")

	regs, err := store.LoadFrom(strings.NewReader(sampleDataset))
	require.NoError(t, err)

	require.Len(t, regs["VA"], 2)
	require.Len(t, regs["NC"], 1)

	// Source order is preserved within a state.
	assert.Equal(t, "first // not a comment inside a string", regs["VA"][0].Notes)
	assert.Equal(t, "second", regs["VA"][1].Notes)

	// Records already tagged with a code pass through.
	assert.Equal(t, domain.RoadTypeNonInterstate, regs["NC"][0].RoadType)
}

func TestLoadFromMalformed(t *testing.T) {
	store := NewStore("")

	_, err := store.LoadFrom(strings.NewReader("[{ not json"))
	require.Error(t, err)

	var dle *DataLoadError
	assert.ErrorAs(t, err, &dle)
}

func TestLoadEmbeddedDataset(t *testing.T) {
	store := NewStore("")

	regs, err := store.Load()
	require.NoError(t, err)

	assert.NotEmpty(t, regs["AL"])
	assert.NotEmpty(t, regs["NC"])
	assert.NotEmpty(t, regs["VA"])
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore("testdata/does-not-exist.json")

	_, err := store.Load()
	require.Error(t, err)

	var dle *DataLoadError
	assert.ErrorAs(t, err, &dle)
}

func TestRegulationsCachesSnapshot(t *testing.T) {
	store := NewStore("")

	first, err := store.Regulations()
	require.NoError(t, err)

	second, err := store.Regulations()
	require.NoError(t, err)

	// Same snapshot until Refresh replaces it.
	assert.Equal(t, len(first), len(second))

	refreshed, err := store.Refresh()
	require.NoError(t, err)
	assert.Equal(t, len(first), len(refreshed))
}

func TestStateCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Virginia", "VA"},
		{"NORTH CAROLINA", "NC"},
		{"new hampshire", "NH"},
		{"VA", "VA"},
		{" Texas ", "TX"},
		{"Puerto Rico", "PUERTO RICO"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StateCode(tt.input), tt.input)
	}
}
