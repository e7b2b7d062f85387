package oracle

import (
	"github.com/chimera-audio/trinity-api/internal/engines"
	"github.com/chimera-audio/trinity-api/internal/logger"
	"github.com/chimera-audio/trinity-api/internal/preset"
)

// FindBestPreset returns the single best catalogue match for a blueprint.
// An empty catalogue (or no resolvable candidates) falls back to a preset
// built purely from the blueprint; the result is never nil.
func (o *Oracle) FindBestPreset(bp *preset.Blueprint) *preset.Preset {
	candidates := o.Rank(bp, 1)
	if len(candidates) == 0 {
		logger.Info("No retrieval candidates, building preset from blueprint", logger.Fields{
			"vibe": bp.OverallVibe,
		})
		return DefaultPreset(o.registry, bp)
	}
	return candidates[0].Preset
}

// DefaultPreset constructs a preset directly from a blueprint's explicit
// slot requests, bypassing retrieval. Used when the catalogue yields
// nothing.
func DefaultPreset(registry *engines.Registry, bp *preset.Blueprint) *preset.Preset {
	out := emptyPreset()
	applyBlueprintEngines(registry, out, bp)

	out.Name = placeholderName
	if bp != nil {
		if bp.CreativeName != "" {
			out.Name = bp.CreativeName
		}
		out.Description = bp.OverallVibe
	}
	return out
}
