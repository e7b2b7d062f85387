package alchemist

import (
	"github.com/chimera-audio/trinity-api/internal/engines"
	"github.com/chimera-audio/trinity-api/internal/preset"
)

// stage is one repair pass. Stages mutate the working preset and append to
// the shared report; they run strictly in the order listed by stages().
type stage struct {
	name string
	run  func(a *Alchemist, p *preset.Preset, r *Report)
}

// Alchemist runs the validation and repair pipeline.
type Alchemist struct {
	registry *engines.Registry
}

// New creates an Alchemist over the given engine registry.
func New(registry *engines.Registry) *Alchemist {
	return &Alchemist{registry: registry}
}

func stages() []stage {
	return []stage{
		{"structure", (*Alchemist).repairStructure},
		{"engine_params", (*Alchemist).repairEngineParams},
		{"param_safety", (*Alchemist).clampParamRanges},
		{"signal_flow", (*Alchemist).checkSignalFlow},
		{"mix_levels", (*Alchemist).checkMixLevels},
		{"cross_engine", (*Alchemist).checkCrossEngineSafety},
	}
}

// Validate repairs a working copy of the preset and returns it with the
// report. The input preset is never mutated. Running Validate on its own
// output yields an identical preset and a score that does not decrease.
func (a *Alchemist) Validate(p *preset.Preset) (*preset.Preset, *Report) {
	work := p.Clone()
	work.Validation = nil
	r := newReport()

	for _, s := range stages() {
		s.run(a, work, r)
	}

	r.Valid = len(r.Errors) == 0
	if r.Score < 0 {
		r.Score = 0
	}

	work.Validation = &preset.ValidationMetadata{
		Valid:    r.Valid,
		Score:    r.Score,
		Errors:   append([]string(nil), r.Errors...),
		Warnings: append([]string(nil), r.Warnings...),
		Fixes:    append([]string(nil), r.Fixes...),
	}
	return work, r
}
