package alchemist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chimera-audio/trinity-api/internal/engines"
	"github.com/chimera-audio/trinity-api/internal/preset"
)

func cleanPreset() *preset.Preset {
	return preset.SafeDefault()
}

func TestValidateCleanPreset(t *testing.T) {
	a := New(engines.NewRegistry())

	out, report := a.Validate(cleanPreset())

	assert.True(t, report.Valid)
	assert.Equal(t, 100.0, report.Score)
	assert.Empty(t, report.Errors)
	require.NotNil(t, out.Validation)
	assert.True(t, out.Validation.Valid)
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	a := New(engines.NewRegistry())

	in := cleanPreset()
	in.Slots[0].Params[0] = 1.7 // out of range, will be clamped in the copy

	out, _ := a.Validate(in)

	assert.Equal(t, 1.7, in.Slots[0].Params[0])
	assert.Equal(t, 1.0, out.Slots[0].Params[0])
}

func TestValidateAllBypassedIsInvalid(t *testing.T) {
	a := New(engines.NewRegistry())

	p := &preset.Preset{Name: "Dead Air", Description: "nothing"}
	for i := 0; i < preset.NumSlots; i++ {
		p.Slots = append(p.Slots, preset.BypassSlot())
	}

	_, report := a.Validate(p)

	assert.False(t, report.Valid)
	assert.LessOrEqual(t, report.Score, 50.0)
	require.NotEmpty(t, report.Errors)
}

func TestValidateIdempotent(t *testing.T) {
	a := New(engines.NewRegistry())

	tests := []struct {
		name string
		doc  string
	}{
		{"clean", `{"name":"ok","description":"d","slot1_engine":2,"slot1_bypass":0}`},
		{"hot feedback", `{"name":"fb","slot3_engine":38,"slot3_bypass":0,"slot3_param4":1.5}`},
		{"hot reverb mix", `{"name":"wash","slot1_engine":39,"slot1_bypass":0,"slot1_param5":0.97}`},
		{"stacked distortion", `{"name":"fuzz",
			"slot1_engine":15,"slot1_bypass":0,"slot1_param1":1.0,"slot1_param8":1.0,
			"slot2_engine":16,"slot2_bypass":0,"slot2_param1":1.0,"slot2_param8":1.0,
			"slot3_engine":17,"slot3_bypass":0,"slot3_param1":1.0,"slot3_param8":1.0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, firstReport := a.Validate(preset.FromWire([]byte(tt.doc)))
			second, secondReport := a.Validate(first)

			// Strip validation metadata before comparing the payloads.
			f := first.Clone()
			s := second.Clone()
			f.Validation, s.Validation = nil, nil
			assert.Equal(t, f, s, "second pass must not change the preset")
			assert.GreaterOrEqual(t, secondReport.Score, firstReport.Score)
		})
	}
}

func TestValidateRandomMalformedPresets(t *testing.T) {
	a := New(engines.NewRegistry())
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 1000; trial++ {
		p := &preset.Preset{}
		if rng.Intn(4) > 0 {
			p.Name = "fuzz"
		}
		slotCount := rng.Intn(10)
		for i := 0; i < slotCount; i++ {
			slot := preset.Slot{
				EngineID: rng.Intn(80) - 10,
				Bypass:   rng.Float64() * 2,
				Mix:      rng.Float64()*4 - 2,
			}
			paramCount := rng.Intn(25)
			for j := 0; j < paramCount; j++ {
				slot.Params = append(slot.Params, rng.Float64()*6-3)
			}
			p.Slots = append(p.Slots, slot)
		}

		out, report := a.Validate(p)

		require.Len(t, out.Slots, preset.NumSlots, "trial %d", trial)
		for si, slot := range out.Slots {
			require.GreaterOrEqual(t, slot.EngineID, 0, "trial %d slot %d", trial, si)
			require.LessOrEqual(t, slot.EngineID, engines.MaxEngineID, "trial %d slot %d", trial, si)
			require.Len(t, slot.Params, preset.ParamsPerSlot, "trial %d slot %d", trial, si)
			for pi, v := range slot.Params {
				require.GreaterOrEqual(t, v, 0.0, "trial %d slot %d param %d", trial, si, pi)
				require.LessOrEqual(t, v, 1.0, "trial %d slot %d param %d", trial, si, pi)
			}
		}
		require.GreaterOrEqual(t, report.Score, 0.0, "trial %d", trial)
		require.LessOrEqual(t, report.Score, 100.0, "trial %d", trial)
	}
}
