package alchemist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chimera-audio/trinity-api/internal/engines"
	"github.com/chimera-audio/trinity-api/internal/preset"
)

// activeSlot builds a full-width active slot with every parameter at 0.5,
// then applies the given index overrides.
func activeSlot(engineID int, overrides map[int]float64) preset.Slot {
	s := preset.Slot{EngineID: engineID, Bypass: 0.0, Mix: 1.0}
	s.Params = make([]float64, preset.ParamsPerSlot)
	for i := range s.Params {
		s.Params[i] = 0.5
	}
	for i, v := range overrides {
		s.Params[i] = v
	}
	return s
}

func presetWith(slots ...preset.Slot) *preset.Preset {
	p := &preset.Preset{Name: "test", Description: "test", Slots: slots}
	for len(p.Slots) < preset.NumSlots {
		p.Slots = append(p.Slots, preset.BypassSlot())
	}
	return p
}

func TestRepairStructureSynthesizesNameAndDescription(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	p := &preset.Preset{}
	a.repairStructure(p, r)

	assert.Equal(t, "Untitled Preset", p.Name)
	assert.Equal(t, "Repaired preset", p.Description)
	assert.Equal(t, 100.0-penaltyMissingName-penaltyMissingDesc, r.Score)
	assert.Len(t, r.Fixes, 2)
}

func TestRepairStructureTruncatesExcessSlots(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	p := &preset.Preset{Name: "n", Description: "d"}
	for i := 0; i < 8; i++ {
		p.Slots = append(p.Slots, activeSlot(2, nil))
	}
	a.repairStructure(p, r)

	assert.Len(t, p.Slots, preset.NumSlots)
	assert.Equal(t, 100.0-penaltyExcessSlots, r.Score)
}

func TestRepairEngineParamsDropsInvalidEngine(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	p := presetWith(activeSlot(99, nil), activeSlot(2, nil))
	a.repairEngineParams(p, r)

	require.Len(t, p.Slots, preset.NumSlots)
	assert.Equal(t, 2, p.Slots[0].EngineID)
	assert.Equal(t, engines.EngineNone, p.Slots[5].EngineID)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, 100.0-penaltyInvalidEngine, r.Score)
}

func TestRepairEngineParamsRebuildsShortSequences(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	slot := preset.Slot{EngineID: 39, Params: []float64{0.9, 0.8, 0.7}}
	p := &preset.Preset{Name: "n", Description: "d", Slots: []preset.Slot{slot}}
	a.repairEngineParams(p, r)

	got := p.Slots[0].Params
	require.Len(t, got, preset.ParamsPerSlot)

	// Existing values survive by position.
	assert.Equal(t, []float64{0.9, 0.8, 0.7}, got[:3])
	// Then registry defaults: plate reverb width and mix.
	assert.Equal(t, 0.8, got[3])
	assert.Equal(t, 0.3, got[4])
	// Then the neutral midpoint beyond the engine's own parameters.
	for i := 5; i < preset.ParamsPerSlot; i++ {
		assert.Equal(t, 0.5, got[i], "param %d", i+1)
	}
	assert.Equal(t, 100.0-penaltyParamMismatch, r.Score)
}

func TestClampParamRangesGlobalClamp(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	p := presetWith(activeSlot(2, map[int]float64{0: -0.5, 1: 1.5}))
	a.clampParamRanges(p, r)

	// Threshold sits at index 0, so the global clamp to 0 is then raised to
	// the safety floor.
	assert.Equal(t, engines.ThresholdFloor, p.Slots[0].Params[0])
	assert.Equal(t, 1.0, p.Slots[0].Params[1])
	assert.Equal(t, 100.0-2*penaltyParamClamp, r.Score)
}

func TestClampParamRangesFeedbackCeiling(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	// Buffer Repeat carries feedback at the fourth parameter.
	p := presetWith(activeSlot(38, map[int]float64{3: 0.98}))
	a.clampParamRanges(p, r)

	assert.Equal(t, engines.FeedbackCeiling, p.Slots[0].Params[3])
	assert.NotEmpty(t, r.Warnings)
	assert.NotEmpty(t, r.Fixes)
	// Envelope hits carry no score penalty of their own.
	assert.Equal(t, 100.0, r.Score)
}

func TestClampParamRangesNormalizesRoutingFields(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	slot := activeSlot(2, nil)
	slot.Bypass = 1.8
	slot.Mix = -0.4
	p := presetWith(slot)
	a.clampParamRanges(p, r)

	assert.Equal(t, 1.0, p.Slots[0].Bypass)
	assert.Equal(t, 0.0, p.Slots[0].Mix)
	assert.Equal(t, 100.0, r.Score)
}

func TestValidateFeedbackOverdriveScenario(t *testing.T) {
	a := New(engines.NewRegistry())

	doc := `{"name":"runaway","description":"d","slot3_engine":38,"slot3_bypass":0,"slot3_param4":1.5}`
	out, report := a.Validate(preset.FromWire([]byte(doc)))

	assert.Equal(t, engines.FeedbackCeiling, out.Slots[2].Params[3])
	assert.True(t, report.Valid)
	assert.NotEmpty(t, report.Warnings)
}

func TestCheckSignalFlowWarnsOnReversedChain(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	// Reverb, chorus, then distortion: chain positions 5, 3, 2.
	p := presetWith(activeSlot(39, nil), activeSlot(23, nil), activeSlot(15, nil))
	a.checkSignalFlow(p, r)

	require.Len(t, r.Warnings, 1)
	assert.Equal(t, 100.0-2*penaltyInversionFactor, r.Score)
}

func TestCheckSignalFlowAcceptsConventionalOrder(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	p := presetWith(activeSlot(15, nil), activeSlot(23, nil), activeSlot(39, nil))
	a.checkSignalFlow(p, r)

	assert.Empty(t, r.Warnings)
	assert.Equal(t, 100.0, r.Score)
}

func TestCheckSignalFlowNeverReorders(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	p := presetWith(activeSlot(39, nil), activeSlot(23, nil), activeSlot(15, nil))
	a.checkSignalFlow(p, r)

	assert.Equal(t, 39, p.Slots[0].EngineID)
	assert.Equal(t, 23, p.Slots[1].EngineID)
	assert.Equal(t, 15, p.Slots[2].EngineID)
}

func TestCheckMixLevelsClampsHotReverb(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	p := presetWith(activeSlot(39, map[int]float64{4: 0.97}))
	a.checkMixLevels(p, r)

	assert.Equal(t, reverbMixWarn, p.Slots[0].Params[4])
	assert.Equal(t, 100.0-penaltyReverbMixClamp, r.Score)
	// The clamp does not suppress the high-mix warning.
	require.Len(t, r.Warnings, 1)
}

func TestCheckMixLevelsWarnsOnlyBelowHardLimit(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	p := presetWith(activeSlot(39, map[int]float64{4: 0.8}))
	a.checkMixLevels(p, r)

	assert.Equal(t, 0.8, p.Slots[0].Params[4])
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, 100.0, r.Score)
}

func TestCheckMixLevelsWarnsOnHotDelay(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	p := presetWith(activeSlot(38, map[int]float64{4: 0.7}))
	a.checkMixLevels(p, r)

	assert.Equal(t, 0.7, p.Slots[0].Params[4])
	require.Len(t, r.Warnings, 1)
}

func TestCheckMixLevelsWarnsOnExcessiveSum(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	var slots []preset.Slot
	for i := 0; i < 6; i++ {
		slots = append(slots, activeSlot(2, map[int]float64{5: 1.0}))
	}
	p := presetWith(slots...)
	a.checkMixLevels(p, r)

	require.Len(t, r.Warnings, 1)
	assert.Equal(t, 100.0-penaltyMixSum, r.Score)
	// Warn-only: nothing is rescaled.
	assert.Equal(t, 1.0, p.Slots[0].Params[5])
}

func TestCheckCrossEngineStacks(t *testing.T) {
	registry := engines.NewRegistry()

	tests := []struct {
		name    string
		ids     []int
		penalty float64
	}{
		{"pitch stack", []int{31, 32, 33}, penaltyPitchStack},
		{"reverb stack", []int{39, 40, 43}, penaltyReverbStack},
		{"heavy cpu stack", []int{33, 41, 50}, penaltyHeavyCPUStack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(registry)
			r := newReport()

			var slots []preset.Slot
			for _, id := range tt.ids {
				slots = append(slots, activeSlot(id, nil))
			}
			a.checkCrossEngineSafety(presetWith(slots...), r)

			require.NotEmpty(t, r.Warnings)
			assert.Equal(t, 100.0-tt.penalty, r.Score)
		})
	}
}

func TestCheckCrossEngineAllBypassed(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	a.checkCrossEngineSafety(presetWith(), r)

	require.Len(t, r.Errors, 1)
	assert.Equal(t, 100.0-penaltyAllBypassed, r.Score)
}

func TestScaleDistortionDrivePreservesRatios(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	// Tube preamp: drive at 1, mix at 8. Multiband saturator: three drive
	// bands at 1-3, mix at 7.
	tube := activeSlot(15, map[int]float64{0: 0.8, 7: 1.0})
	multi := activeSlot(19, map[int]float64{0: 0.6, 1: 0.6, 2: 0.6, 6: 1.0})
	p := presetWith(tube, multi)

	a.scaleDistortionDrive(p, r)

	sum := p.Slots[0].Params[0] + p.Slots[0].Params[7] +
		p.Slots[1].Params[0] + p.Slots[1].Params[1] + p.Slots[1].Params[2] + p.Slots[1].Params[6]
	assert.InDelta(t, driveSumCeiling, sum, 1e-9)

	// Relative balance between contributions is preserved.
	assert.InDelta(t, 0.8/0.6, p.Slots[0].Params[0]/p.Slots[1].Params[0], 1e-9)

	// Non-contributing parameters are untouched.
	assert.Equal(t, 0.5, p.Slots[0].Params[1])
	require.NotEmpty(t, r.Fixes)
}

func TestScaleDistortionDriveBelowCeiling(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	p := presetWith(activeSlot(15, map[int]float64{0: 0.5, 7: 1.0}))
	a.scaleDistortionDrive(p, r)

	assert.Equal(t, 0.5, p.Slots[0].Params[0])
	assert.Equal(t, 1.0, p.Slots[0].Params[7])
	assert.Empty(t, r.Fixes)
}

func TestScaleDistortionDriveIgnoresBypassedSlots(t *testing.T) {
	a := New(engines.NewRegistry())
	r := newReport()

	hot := activeSlot(15, map[int]float64{0: 1.0, 7: 1.0})
	hot.Bypass = 1.0
	p := presetWith(hot, activeSlot(17, map[int]float64{0: 1.0, 3: 1.0}))

	a.scaleDistortionDrive(p, r)

	// Only the active exciter counts: 2.0 is under the ceiling.
	assert.Equal(t, 1.0, p.Slots[0].Params[0])
	assert.Equal(t, 1.0, p.Slots[1].Params[0])
	assert.Empty(t, r.Fixes)
}
