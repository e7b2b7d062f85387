package preset

// padValue fills parameter positions the engine does not define. Centered so
// an unexpected read on the plugin side lands on a neutral value.
const padValue = 0.5

// Format enforces the exact external cardinality on a preset: exactly
// NumSlots slots, each with exactly ParamsPerSlot parameter values. Existing
// values keep their positions; missing slots become bypass slots and missing
// parameters are padded, never truncated below ParamsPerSlot. Total function,
// cannot fail.
func Format(p *Preset) *Preset {
	out := p.Clone()

	for len(out.Slots) < NumSlots {
		out.Slots = append(out.Slots, BypassSlot())
	}
	if len(out.Slots) > NumSlots {
		out.Slots = out.Slots[:NumSlots]
	}

	for i := range out.Slots {
		params := out.Slots[i].Params
		for len(params) < ParamsPerSlot {
			params = append(params, padValue)
		}
		out.Slots[i].Params = params[:ParamsPerSlot]
	}
	return out
}
