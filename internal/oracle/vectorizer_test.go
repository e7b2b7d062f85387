package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chimera-audio/trinity-api/internal/catalogue"
	"github.com/chimera-audio/trinity-api/internal/preset"
)

func TestVectorizeDimensionAndDefaults(t *testing.T) {
	q := Vectorize(&preset.Blueprint{OverallVibe: ""})

	require.Len(t, q.Vector, catalogue.VectorDim)
	for i := 0; i < profileDims; i++ {
		assert.Equal(t, profileDefault, q.Vector[i], "profile dim %d", i)
	}
	for i := profileDims; i < catalogue.VectorDim; i++ {
		assert.Zero(t, q.Vector[i], "dim %d", i)
	}
	assert.Empty(t, q.RequestedEngines)
}

func TestVectorizeKeywordProfile(t *testing.T) {
	tests := []struct {
		name string
		vibe string
		dim  int
		want float64
	}{
		{"warm boosts warmth", "a warm pad", profWarmth, profileBoost},
		{"vintage boosts vintage", "vintage keys", profVintage, profileBoost},
		{"dark lowers brightness", "dark drone", profBrightness, 0.15},
		{"ambient boosts space", "ambient wash", profSpace, profileBoost},
		{"aggressive boosts aggression", "aggressive lead", profAggression, profileBoost},
		{"case insensitive", "WARM AND BRIGHT", profWarmth, profileBoost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Vectorize(&preset.Blueprint{OverallVibe: tt.vibe})
			assert.Equal(t, tt.want, q.Vector[tt.dim])
		})
	}
}

func TestVectorizeWarmVintage(t *testing.T) {
	q := Vectorize(&preset.Blueprint{OverallVibe: "warm vintage tape sound"})

	assert.Equal(t, profileBoost, q.Vector[profWarmth])
	assert.Equal(t, profileBoost, q.Vector[profVintage])
	// Untouched dimensions keep the soft default.
	assert.Equal(t, profileDefault, q.Vector[profDensity])
}

func TestVectorizeLastRuleWins(t *testing.T) {
	// "tape" and "modern" both target the vintage dimension; "modern" is
	// later in the rule list, so it decides.
	q := Vectorize(&preset.Blueprint{OverallVibe: "modern tape"})
	assert.Equal(t, 0.15, q.Vector[profVintage])
}

func TestVectorizeEngineDimensions(t *testing.T) {
	bp := &preset.Blueprint{
		OverallVibe: "anything",
		Slots: []preset.BlueprintSlot{
			{Slot: 1, EngineID: 15},
			{Slot: 2, EngineID: 50},
		},
	}

	q := Vectorize(bp)
	assert.Equal(t, engineWeight, q.Vector[engineSlotBase+15%engineSlotRange])
	assert.Equal(t, engineWeight, q.Vector[engineSlotBase+50%engineSlotRange])
	assert.Equal(t, map[int]bool{15: true, 50: true}, q.RequestedEngines)
}

func TestVectorizeProfileClamped(t *testing.T) {
	q := Vectorize(&preset.Blueprint{OverallVibe: "warm bright dense huge"})
	for i := 0; i < profileDims; i++ {
		assert.GreaterOrEqual(t, q.Vector[i], 0.0)
		assert.LessOrEqual(t, q.Vector[i], 1.0)
	}
}
