package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPadsSlotsAndParams(t *testing.T) {
	p := &Preset{
		Name: "Short",
		Slots: []Slot{
			{EngineID: 2, Bypass: 0.0, Params: []float64{0.1, 0.2}},
		},
	}

	out := Format(p)
	require.Len(t, out.Slots, NumSlots)

	assert.Equal(t, 2, out.Slots[0].EngineID)
	require.Len(t, out.Slots[0].Params, ParamsPerSlot)
	assert.Equal(t, 0.1, out.Slots[0].Params[0])
	assert.Equal(t, padValue, out.Slots[0].Params[2])

	for i := 1; i < NumSlots; i++ {
		assert.Equal(t, 0, out.Slots[i].EngineID, "slot %d", i+1)
		assert.Equal(t, 1.0, out.Slots[i].Bypass, "slot %d", i+1)
		assert.Len(t, out.Slots[i].Params, ParamsPerSlot, "slot %d", i+1)
	}

	// Input untouched.
	assert.Len(t, p.Slots, 1)
	assert.Len(t, p.Slots[0].Params, 2)
}

func TestFormatTruncatesExcess(t *testing.T) {
	p := &Preset{Name: "Overfull"}
	for i := 0; i < 8; i++ {
		params := make([]float64, 20)
		p.Slots = append(p.Slots, Slot{EngineID: i, Params: params})
	}

	out := Format(p)
	require.Len(t, out.Slots, NumSlots)
	for i := range out.Slots {
		assert.Len(t, out.Slots[i].Params, ParamsPerSlot)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	p := &Preset{Name: "Once", Slots: []Slot{{EngineID: 5, Params: []float64{0.3}}}}

	once := Format(p)
	twice := Format(once)
	assert.Equal(t, once, twice)
}
