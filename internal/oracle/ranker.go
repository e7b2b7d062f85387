package oracle

import (
	"sort"

	"github.com/chimera-audio/trinity-api/internal/catalogue"
	"github.com/chimera-audio/trinity-api/internal/engines"
	"github.com/chimera-audio/trinity-api/internal/logger"
	"github.com/chimera-audio/trinity-api/internal/preset"
)

// Candidate is one ranked retrieval result.
type Candidate struct {
	Preset *preset.Preset `json:"preset"`
	Index  int            `json:"catalogue_index"`

	Distance         float64 `json:"distance"`
	SimilarityScore  float64 `json:"similarity_score"`
	EngineMatchScore float64 `json:"engine_match_score"`
	CombinedScore    float64 `json:"combined_score"`
}

// Oracle ranks catalogue presets against a blueprint.
type Oracle struct {
	store    *catalogue.Store
	registry *engines.Registry

	// Tuned constants, injected from configuration.
	oversample  int
	engineBoost float64
}

// New creates an Oracle over a loaded store.
func New(store *catalogue.Store, registry *engines.Registry, oversample int, engineBoost float64) *Oracle {
	if oversample <= 0 {
		oversample = 10
	}
	if engineBoost <= 0 {
		engineBoost = 10.0
	}
	return &Oracle{store: store, registry: registry, oversample: oversample, engineBoost: engineBoost}
}

// Rank returns up to k candidates ordered by combined score descending.
// Raw vector distance alone is a poor proxy once engine overlap is factored
// in, so the nearest-neighbor query oversamples and the results are
// re-scored: any nonzero engine overlap outranks a pure-distance winner.
// Ties keep the original query order, so the nearer candidate wins.
func (o *Oracle) Rank(bp *preset.Blueprint, k int) []Candidate {
	if k <= 0 {
		return nil
	}

	query := Vectorize(bp)
	requested := query.RequestedEngines

	// Neighbor hits can land on rows the utility filter excluded; those are
	// skipped below, so the budget is sized against the raw vector index.
	limit := k * o.oversample
	if limit > o.store.VectorCount() {
		limit = o.store.VectorCount()
	}
	neighbors := o.store.Nearest(query.Vector, limit)
	if len(neighbors) == 0 {
		return nil
	}

	candidates := make([]Candidate, 0, len(neighbors))
	for _, n := range neighbors {
		idx, ok := o.store.Resolve(n.Index)
		if !ok {
			continue
		}
		rec, err := o.store.Get(idx)
		if err != nil {
			logger.Warn("Skipping unresolvable catalogue index", logger.Fields{"index": idx})
			continue
		}

		overlap := 0
		for id := range rec.EngineIDs() {
			if requested[id] {
				overlap++
			}
		}
		denom := len(requested)
		if denom < 1 {
			denom = 1
		}
		matchRatio := float64(overlap) / float64(denom)
		similarity := 1.0 / (1.0 + n.Distance)

		candidates = append(candidates, Candidate{
			Preset:           Adapt(o.registry, rec, bp),
			Index:            idx,
			Distance:         n.Distance,
			SimilarityScore:  similarity,
			EngineMatchScore: matchRatio,
			CombinedScore:    similarity + matchRatio*o.engineBoost,
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].CombinedScore > candidates[b].CombinedScore
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}
