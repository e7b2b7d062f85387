package oracle

import (
	"github.com/chimera-audio/trinity-api/internal/catalogue"
	"github.com/chimera-audio/trinity-api/internal/engines"
	"github.com/chimera-audio/trinity-api/internal/logger"
	"github.com/chimera-audio/trinity-api/internal/preset"
)

const placeholderName = "Generated Preset"

// Adapt normalizes a catalogue record (either wire shape) into the canonical
// six-slot preset. The utility-engine filter is re-applied per slot here even
// though the store already excludes utility-heavy entries: a forbidden engine
// found in a slot is forced to bypass, not merely skipped.
func Adapt(registry *engines.Registry, rec catalogue.Record, bp *preset.Blueprint) *preset.Preset {
	var out *preset.Preset
	switch {
	case rec.Legacy != nil:
		out = adaptLegacy(registry, rec.Legacy)
	case rec.Flat != nil:
		out = adaptFlat(registry, rec.Flat)
	default:
		out = emptyPreset()
	}

	applyBlueprintEngines(registry, out, bp)

	out.Name = resolveName(bp, rec)
	return out
}

func adaptFlat(registry *engines.Registry, rec *catalogue.FlatSlotRecord) *preset.Preset {
	out := emptyPreset()
	for i, src := range rec.Slots {
		slot := preset.Slot{
			EngineID: src.Engine,
			Bypass:   src.Bypass,
			Mix:      src.Mix,
			Solo:     src.Solo,
			Params:   append([]float64(nil), src.Params...),
		}
		if registry.IsUtility(slot.EngineID) {
			logger.Info("Substituted utility engine from catalogue slot", logger.Fields{
				"slot": i + 1, "engine_id": slot.EngineID,
			})
			slot.EngineID = engines.EngineNone
			slot.Bypass = 1.0
		}
		out.Slots[i] = slot
	}
	return out
}

func adaptLegacy(registry *engines.Registry, rec *catalogue.LegacyRecord) *preset.Preset {
	out := emptyPreset()
	for _, e := range rec.Engines {
		pluginSlot := e.Slot + 1 // wire slots are 0-based
		if pluginSlot < 1 || pluginSlot > preset.NumSlots {
			continue
		}
		engineID := e.Type
		if registry.IsUtility(engineID) {
			logger.Info("Substituted utility engine from legacy catalogue entry", logger.Fields{
				"slot": pluginSlot, "engine_id": engineID,
			})
			engineID = engines.EngineNone
		}
		slot := preset.BypassSlot()
		slot.EngineID = engineID
		if engineID != engines.EngineNone {
			slot.Bypass = 0.0
			slot.Mix = e.Mix
			if defaults := registry.DefaultParams(engineID); defaults != nil {
				copy(slot.Params, defaults)
			}
		}
		// Wire params are 0-based; plugin parameter slots are 1-based.
		for j, v := range e.Params {
			if j < preset.ParamsPerSlot {
				slot.Params[j] = v
			}
		}
		out.Slots[pluginSlot-1] = slot
	}
	return out
}

// applyBlueprintEngines installs the blueprint's explicit engine selections
// into slots the record left empty. Slots the record filled keep their
// engines; the nudge step handles any remaining divergence.
func applyBlueprintEngines(registry *engines.Registry, p *preset.Preset, bp *preset.Blueprint) {
	if bp == nil {
		return
	}
	for _, req := range bp.Slots {
		if req.EngineID <= 0 || req.Slot < 1 || req.Slot > preset.NumSlots {
			continue
		}
		if registry.IsUtility(req.EngineID) || !registry.IsValidID(req.EngineID) {
			continue
		}
		i := req.Slot - 1
		if p.Slots[i].EngineID != engines.EngineNone {
			continue
		}
		slot := preset.BypassSlot()
		slot.EngineID = req.EngineID
		slot.Bypass = 0.0
		slot.Mix = 1.0
		if defaults := registry.DefaultParams(req.EngineID); defaults != nil {
			copy(slot.Params, defaults)
		}
		p.Slots[i] = slot
	}
}

func resolveName(bp *preset.Blueprint, rec catalogue.Record) string {
	if bp != nil && bp.CreativeName != "" {
		return bp.CreativeName
	}
	if name := rec.Name(); name != "" {
		return name
	}
	return placeholderName
}

func emptyPreset() *preset.Preset {
	out := &preset.Preset{Slots: make([]preset.Slot, preset.NumSlots)}
	for i := range out.Slots {
		out.Slots[i] = preset.BypassSlot()
	}
	return out
}
