package alchemist

import (
	"fmt"
	"strings"

	"github.com/chimera-audio/trinity-api/internal/engines"
	"github.com/chimera-audio/trinity-api/internal/preset"
)

// Stage penalties.
const (
	penaltyMissingName     = 5
	penaltyMissingDesc     = 2
	penaltyExcessSlots     = 10
	penaltyInvalidEngine   = 20
	penaltyParamMismatch   = 15
	penaltyParamClamp      = 2
	penaltyReverbMixClamp  = 5
	penaltyMixSum          = 10
	penaltyPitchStack      = 10
	penaltyReverbStack     = 10
	penaltyHeavyCPUStack   = 5
	penaltyAllBypassed     = 50
	penaltyInversionFactor = 2
)

// Safety ceilings.
const (
	reverbMixWarn   = 0.7
	reverbMixClamp  = 0.9
	delayMixWarn    = 0.6
	mixSumCeiling   = 3.0
	driveSumCeiling = 3.0
	scaleEpsilon    = 1e-9
)

// repairStructure ensures the preset has a name, a description and at most
// six slots.
func (a *Alchemist) repairStructure(p *preset.Preset, r *Report) {
	if strings.TrimSpace(p.Name) == "" {
		p.Name = "Untitled Preset"
		r.addFix("synthesized missing name", penaltyMissingName)
	}
	if strings.TrimSpace(p.Description) == "" {
		p.Description = "Repaired preset"
		r.addFix("synthesized missing description", penaltyMissingDesc)
	}
	if len(p.Slots) > preset.NumSlots {
		r.addFix(fmt.Sprintf("truncated %d excess slots", len(p.Slots)-preset.NumSlots), penaltyExcessSlots)
		p.Slots = p.Slots[:preset.NumSlots]
	}
}

// repairEngineParams drops slots with unknown engines, rebuilds parameter
// sequences to the external cardinality and pads the chain back to six
// slots. Rebuilt sequences preserve existing values by position, then fall
// back to the registry default, then to 0.5.
func (a *Alchemist) repairEngineParams(p *preset.Preset, r *Report) {
	kept := p.Slots[:0]
	for i, slot := range p.Slots {
		desc, ok := a.registry.Get(slot.EngineID)
		if !ok {
			r.addError(fmt.Sprintf("slot %d: invalid engine id %d, slot dropped", i+1, slot.EngineID), penaltyInvalidEngine)
			continue
		}

		if len(slot.Params) != preset.ParamsPerSlot {
			rebuilt := make([]float64, preset.ParamsPerSlot)
			for j := range rebuilt {
				switch {
				case j < len(slot.Params):
					rebuilt[j] = slot.Params[j]
				case j < desc.ParameterCount():
					rebuilt[j] = desc.Parameters[j].Default
				default:
					rebuilt[j] = 0.5
				}
			}
			r.addFix(fmt.Sprintf("slot %d: rebuilt parameter sequence (%d -> %d)", i+1, len(slot.Params), preset.ParamsPerSlot), penaltyParamMismatch)
			slot.Params = rebuilt
		}
		kept = append(kept, slot)
	}
	p.Slots = kept
	for len(p.Slots) < preset.NumSlots {
		p.Slots = append(p.Slots, preset.BypassSlot())
	}
}

// clampParamRanges applies the global [0,1] clamp, then the named safety
// envelopes (feedback/resonance ceilings, threshold floor). Envelope hits
// are logged separately as warnings plus a fix, not duplicate errors.
func (a *Alchemist) clampParamRanges(p *preset.Preset, r *Report) {
	for i := range p.Slots {
		slot := &p.Slots[i]
		// Routing fields are normalized without penalty.
		slot.Bypass = clamp01(slot.Bypass)
		slot.Mix = clamp01(slot.Mix)
		slot.Solo = clamp01(slot.Solo)
		for j := range slot.Params {
			if slot.Params[j] < 0 {
				slot.Params[j] = 0
				r.addFix(fmt.Sprintf("slot %d param %d: clamped below 0", i+1, j+1), penaltyParamClamp)
			} else if slot.Params[j] > 1 {
				slot.Params[j] = 1
				r.addFix(fmt.Sprintf("slot %d param %d: clamped above 1", i+1, j+1), penaltyParamClamp)
			}
		}

		desc, ok := a.registry.Get(slot.EngineID)
		if !ok {
			continue
		}
		for j, param := range desc.Parameters {
			if j >= len(slot.Params) {
				break
			}
			low, high := engines.SafetyBound(param.Name)
			if slot.Params[j] > high {
				slot.Params[j] = high
				r.addWarning(fmt.Sprintf("slot %d: %q above safety ceiling", i+1, param.Name), 0)
				r.addFix(fmt.Sprintf("slot %d: %q limited to %.2f", i+1, param.Name, high), 0)
			} else if slot.Params[j] < low {
				slot.Params[j] = low
				r.addWarning(fmt.Sprintf("slot %d: %q below safety floor", i+1, param.Name), 0)
				r.addFix(fmt.Sprintf("slot %d: %q raised to %.2f", i+1, param.Name, low), 0)
			}
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// checkSignalFlow counts adjacent-pair chain-position inversions. It only
// warns; reordering is the nudge step's responsibility, not this
// pipeline's.
func (a *Alchemist) checkSignalFlow(p *preset.Preset, r *Report) {
	var positions []int
	active := 0
	for _, slot := range p.Slots {
		if slot.EngineID == engines.EngineNone {
			continue
		}
		if desc, ok := a.registry.Get(slot.EngineID); ok {
			positions = append(positions, desc.ChainPosition)
		}
		if slot.Active() {
			active++
		}
	}

	inversions := 0
	for i := 0; i+1 < len(positions); i++ {
		if positions[i] > positions[i+1] {
			inversions++
		}
	}

	if inversions > active/2 {
		r.addWarning(fmt.Sprintf("unconventional signal flow: %d chain-order inversions", inversions),
			float64(penaltyInversionFactor*inversions))
	}
}

// checkMixLevels inspects each engine's mix parameter. Excess reverb wash
// is clamped only past the hard limit; delays are warn-only. The summed mix
// ceiling warns without auto-scaling, unlike the distortion drive ceiling.
func (a *Alchemist) checkMixLevels(p *preset.Preset, r *Report) {
	mixSum := 0.0
	for i := range p.Slots {
		slot := &p.Slots[i]
		desc, ok := a.registry.Get(slot.EngineID)
		if !ok || desc.MixParamIndex < 0 || desc.MixParamIndex >= len(slot.Params) {
			continue
		}
		mix := slot.Params[desc.MixParamIndex]
		mixSum += mix

		switch desc.Category {
		case engines.CategoryReverb:
			if mix > reverbMixWarn {
				r.addWarning(fmt.Sprintf("slot %d: reverb mix %.2f is high", i+1, mix), 0)
			}
			if mix > reverbMixClamp {
				slot.Params[desc.MixParamIndex] = reverbMixWarn
				r.addFix(fmt.Sprintf("slot %d: reverb mix %.2f clamped to %.2f", i+1, mix, reverbMixWarn), penaltyReverbMixClamp)
			}
		case engines.CategoryDelay:
			if mix > delayMixWarn {
				r.addWarning(fmt.Sprintf("slot %d: delay mix %.2f is high", i+1, mix), 0)
			}
		}
	}

	if mixSum > mixSumCeiling {
		r.addWarning(fmt.Sprintf("total mix level %.2f exceeds ceiling %.1f", mixSum, mixSumCeiling), penaltyMixSum)
	}
}

// checkCrossEngineSafety flags risky engine combinations, scales aggregate
// distortion drive, and treats a fully bypassed chain as the one hard
// error.
func (a *Alchemist) checkCrossEngineSafety(p *preset.Preset, r *Report) {
	pitchCount, reverbCount, heavyCount := 0, 0, 0
	for _, slot := range p.Slots {
		if !slot.Active() {
			continue
		}
		desc, ok := a.registry.Get(slot.EngineID)
		if !ok {
			continue
		}
		if desc.Category == engines.CategoryPitch {
			pitchCount++
		}
		if desc.Category == engines.CategoryReverb {
			reverbCount++
		}
		if desc.HeavyCPU {
			heavyCount++
		}
	}

	if pitchCount > 2 {
		r.addWarning(fmt.Sprintf("%d pitch-shift engines stacked", pitchCount), penaltyPitchStack)
	}
	if reverbCount > 2 {
		r.addWarning(fmt.Sprintf("%d reverb engines stacked", reverbCount), penaltyReverbStack)
	}
	if heavyCount > 2 {
		r.addWarning(fmt.Sprintf("%d CPU-heavy engines stacked", heavyCount), penaltyHeavyCPUStack)
	}

	a.scaleDistortionDrive(p, r)

	if p.ActiveSlotCount() == 0 {
		r.addError("every slot is bypassed or empty", penaltyAllBypassed)
	}
}

// scaleDistortionDrive enforces the aggregate gain ceiling across active
// distortion slots. Contributing parameters are scaled down proportionally
// rather than clipped independently, preserving their relative balance.
// Distortion clipping is audibly destructive, so unlike the mix-sum check
// this one auto-corrects.
func (a *Alchemist) scaleDistortionDrive(p *preset.Preset, r *Report) {
	type contribution struct {
		slot, param int
	}
	var contribs []contribution
	sum := 0.0

	for i := range p.Slots {
		slot := &p.Slots[i]
		if !slot.Active() || slot.EngineID < engines.FirstDistortionID || slot.EngineID > engines.LastDistortionID {
			continue
		}
		desc, ok := a.registry.Get(slot.EngineID)
		if !ok {
			continue
		}
		for j, param := range desc.Parameters {
			if j >= len(slot.Params) {
				break
			}
			name := strings.ToLower(param.Name)
			if strings.Contains(name, "drive") || j == desc.MixParamIndex {
				contribs = append(contribs, contribution{i, j})
				sum += slot.Params[j]
			}
		}
	}

	if sum <= driveSumCeiling+scaleEpsilon {
		return
	}
	scale := driveSumCeiling / sum
	for _, c := range contribs {
		p.Slots[c.slot].Params[c.param] *= scale
	}
	r.addFix(fmt.Sprintf("aggregate distortion drive %.2f scaled to ceiling %.1f", sum, driveSumCeiling), 0)
}
