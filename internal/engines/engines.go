// Package engines holds the static registry of effect engines understood by
// the plugin. The registry is immutable after construction and is handed to
// consumers as a value, never imported as mutable global state.
package engines

import (
	"sort"
	"strings"
)

// Category groups engines by their broad signal-processing role.
type Category string

const (
	CategoryDynamics   Category = "dynamics"
	CategoryEQFilter   Category = "eq_filter"
	CategoryDistortion Category = "distortion"
	CategoryModulation Category = "modulation"
	CategoryPitch      Category = "pitch"
	CategoryDelay      Category = "delay"
	CategoryReverb     Category = "reverb"
	CategorySpatial    Category = "spatial"
	CategoryUtility    Category = "utility"
	CategorySpecial    Category = "special"
)

// Engine id boundaries and special ids.
const (
	// EngineNone is the bypass engine occupying empty slots.
	EngineNone = 0

	// MaxEngineID is the highest valid engine id.
	MaxEngineID = 56

	// Distortion family occupies a contiguous id range. The aggregate-drive
	// auto-scale applies only to this range.
	FirstDistortionID = 15
	LastDistortionID  = 22
)

// Parameter describes one normalized parameter of an engine.
type Parameter struct {
	Name    string  `json:"name"`
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Descriptor describes one engine kind. Descriptors are immutable.
type Descriptor struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`

	// Parameters is the ordered parameter schema; len(Parameters) is the
	// engine's parameter count (0..15).
	Parameters []Parameter `json:"parameters"`

	// MixParamIndex points into Parameters at the wet/dry mix control,
	// or -1 when the engine has none.
	MixParamIndex int `json:"mix_param_index"`

	// ChainPosition is a 0..5 ordering heuristic (utility first, reverb
	// last). It is advisory only and never enforced by the repair pipeline.
	ChainPosition int `json:"chain_position"`

	// HeavyCPU marks engines whose DSP cost is high enough that stacking
	// several of them is flagged by the safety checks.
	HeavyCPU bool `json:"heavy_cpu,omitempty"`
}

// ParameterCount returns the number of parameters the engine exposes.
func (d Descriptor) ParameterCount() int {
	return len(d.Parameters)
}

// Registry is the read-only engine lookup table. Safe for concurrent use.
type Registry struct {
	byID map[int]Descriptor
}

// NewRegistry builds the registry from the built-in engine table.
func NewRegistry() *Registry {
	byID := make(map[int]Descriptor, len(engineTable))
	for _, d := range engineTable {
		byID[d.ID] = d
	}
	return &Registry{byID: byID}
}

// Get returns the descriptor for an engine id.
func (r *Registry) Get(id int) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// IsValidID reports whether id refers to a registered engine (0 included).
func (r *Registry) IsValidID(id int) bool {
	_, ok := r.byID[id]
	return ok
}

// Count returns the number of registered engines.
func (r *Registry) Count() int {
	return len(r.byID)
}

// All returns every registered descriptor ordered by id.
func (r *Registry) All() []Descriptor {
	all := make([]Descriptor, 0, len(r.byID))
	for _, d := range r.byID {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// IsUtility reports whether the engine belongs to the utility category
// (gain trim, mono summing, phase align, mid/side). Utility engines are
// structural and are excluded from creative retrieval.
func (r *Registry) IsUtility(id int) bool {
	if id == EngineNone {
		return false
	}
	d, ok := r.byID[id]
	return ok && d.Category == CategoryUtility
}

// UtilityIDs returns the set of utility engine ids (bypass excluded).
func (r *Registry) UtilityIDs() map[int]bool {
	ids := make(map[int]bool)
	for id, d := range r.byID {
		if id != EngineNone && d.Category == CategoryUtility {
			ids[id] = true
		}
	}
	return ids
}

// DefaultParams returns the engine's default parameter values in order.
func (r *Registry) DefaultParams(id int) []float64 {
	d, ok := r.byID[id]
	if !ok {
		return nil
	}
	params := make([]float64, len(d.Parameters))
	for i, p := range d.Parameters {
		params[i] = p.Default
	}
	return params
}

// Named safety envelopes applied on top of the global [0,1] clamp. Matching
// is by substring on the lowercase parameter name.
const (
	FeedbackCeiling  = 0.95
	ResonanceCeiling = 0.95
	ThresholdFloor   = 0.05
)

// SafetyBound returns the tightened (min, max) range for a parameter name.
// Parameters without a named envelope keep the global [0,1] range.
func SafetyBound(paramName string) (float64, float64) {
	name := strings.ToLower(paramName)
	switch {
	case strings.Contains(name, "feedback"):
		return 0.0, FeedbackCeiling
	case strings.Contains(name, "resonance"), name == "q":
		return 0.0, ResonanceCeiling
	case strings.Contains(name, "threshold"):
		return ThresholdFloor, 1.0
	}
	return 0.0, 1.0
}
