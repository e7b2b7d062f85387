// Package oracle implements preset retrieval: blueprint vectorization,
// oversampled nearest-neighbor ranking with engine-overlap re-ranking, and
// adaptation of catalogue records into canonical presets.
package oracle

import (
	"strings"

	"github.com/chimera-audio/trinity-api/internal/catalogue"
	"github.com/chimera-audio/trinity-api/internal/preset"
)

const (
	// engineSlotBase..engineSlotBase+engineSlotRange-1 encode requested
	// engines; indices 0..5 carry the soft sonic profile.
	engineSlotBase  = 11
	engineSlotRange = 42

	// engineWeight dominates the Euclidean distance so candidates sharing a
	// requested engine rank far above vibe-only matches.
	engineWeight = 5.0

	profileDefault = 0.3
	profileBoost   = 0.8
)

// Sonic profile dimensions.
const (
	profBrightness = iota
	profDensity
	profAggression
	profSpace
	profVintage
	profWarmth
	profileDims
)

// keywordRule maps a vibe substring to one profile dimension. Rules are an
// ordered list, applied first to last; a later match overwrites an earlier
// value on the same dimension. The order is fixed to keep the soft signal
// reproducible.
type keywordRule struct {
	keyword string
	dim     int
	value   float64
}

var keywordRules = []keywordRule{
	{"bright", profBrightness, profileBoost},
	{"airy", profBrightness, profileBoost},
	{"dark", profBrightness, 0.15},
	{"thick", profDensity, profileBoost},
	{"dense", profDensity, profileBoost},
	{"lush", profDensity, profileBoost},
	{"sparse", profDensity, 0.15},
	{"clean", profDensity, 0.15},
	{"aggressive", profAggression, profileBoost},
	{"heavy", profAggression, profileBoost},
	{"hard", profAggression, profileBoost},
	{"gentle", profAggression, 0.15},
	{"soft", profAggression, 0.15},
	{"spacious", profSpace, profileBoost},
	{"ambient", profSpace, profileBoost},
	{"wash", profSpace, profileBoost},
	{"huge", profSpace, profileBoost},
	{"dry", profSpace, 0.15},
	{"tight", profSpace, 0.15},
	{"vintage", profVintage, profileBoost},
	{"retro", profVintage, profileBoost},
	{"tape", profVintage, profileBoost},
	{"analog", profVintage, profileBoost},
	{"lo-fi", profVintage, profileBoost},
	{"modern", profVintage, 0.15},
	{"digital", profVintage, 0.15},
	{"warm", profWarmth, profileBoost},
	{"cozy", profWarmth, profileBoost},
	{"cold", profWarmth, 0.15},
	{"icy", profWarmth, 0.15},
}

// Query is a vectorized blueprint. RequestedEngines is retained for the
// ranker's overlap scoring; it is request-scoped, never shared.
type Query struct {
	Vector           []float64
	RequestedEngines map[int]bool
}

// Vectorize maps a blueprint into the fixed-dimension query space.
func Vectorize(bp *preset.Blueprint) Query {
	vec := make([]float64, catalogue.VectorDim)
	for i := 0; i < profileDims; i++ {
		vec[i] = profileDefault
	}

	vibe := strings.ToLower(bp.OverallVibe)
	for _, rule := range keywordRules {
		if strings.Contains(vibe, rule.keyword) {
			vec[rule.dim] = rule.value
		}
	}

	requested := bp.RequestedEngines()
	for id := range requested {
		vec[engineSlotBase+(id%engineSlotRange)] = engineWeight
	}

	for i := 0; i < profileDims; i++ {
		if vec[i] < 0 {
			vec[i] = 0
		}
		if vec[i] > 1 {
			vec[i] = 1
		}
	}
	return Query{Vector: vec, RequestedEngines: requested}
}
