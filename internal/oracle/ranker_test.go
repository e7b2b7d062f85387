package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chimera-audio/trinity-api/internal/catalogue"
	"github.com/chimera-audio/trinity-api/internal/engines"
	"github.com/chimera-audio/trinity-api/internal/preset"
)

func flatRecord(name string, engineIDs ...int) catalogue.Record {
	rec := &catalogue.FlatSlotRecord{Name: name}
	for i, id := range engineIDs {
		if i >= len(rec.Slots) {
			break
		}
		rec.Slots[i] = catalogue.FlatSlot{Engine: id}
	}
	return catalogue.Record{Flat: rec}
}

// vectorAt returns the query vector offset by dist along the first axis, so
// its Euclidean distance from the query is exactly dist.
func vectorAt(query []float64, dist float64) []float64 {
	v := append([]float64(nil), query...)
	v[0] += dist
	return v
}

func TestRankEngineOverlapDominatesDistance(t *testing.T) {
	registry := engines.NewRegistry()

	bp := &preset.Blueprint{
		OverallVibe: "crunchy verb",
		Slots: []preset.BlueprintSlot{
			{Slot: 1, EngineID: 15},
			{Slot: 2, EngineID: 39},
		},
	}
	query := Vectorize(bp).Vector

	// A is much closer in vector space but shares no engines; B matches
	// both requested engines at distance 0.9.
	records := []catalogue.Record{
		flatRecord("near-no-overlap", 2),
		flatRecord("far-full-overlap", 15, 39),
	}
	vectors := [][]float64{
		vectorAt(query, 0.1),
		vectorAt(query, 0.9),
	}

	store := catalogue.New(registry, records, nil, vectors)
	o := New(store, registry, 10, 10.0)

	candidates := o.Rank(bp, 2)
	require.Len(t, candidates, 2)

	assert.Equal(t, "far-full-overlap", candidates[0].Preset.Name)
	assert.Equal(t, 1.0, candidates[0].EngineMatchScore)
	assert.Equal(t, "near-no-overlap", candidates[1].Preset.Name)
	assert.Zero(t, candidates[1].EngineMatchScore)
	assert.Greater(t, candidates[0].CombinedScore, candidates[1].CombinedScore)

	// The loser still wins on raw similarity.
	assert.Greater(t, candidates[1].SimilarityScore, candidates[0].SimilarityScore)
}

func TestRankDistanceBreaksOverlapTies(t *testing.T) {
	registry := engines.NewRegistry()

	bp := &preset.Blueprint{
		OverallVibe: "anything",
		Slots:       []preset.BlueprintSlot{{Slot: 1, EngineID: 15}},
	}
	query := Vectorize(bp).Vector

	records := []catalogue.Record{
		flatRecord("farther", 15),
		flatRecord("nearer", 15),
	}
	vectors := [][]float64{
		vectorAt(query, 0.8),
		vectorAt(query, 0.2),
	}

	store := catalogue.New(registry, records, nil, vectors)
	o := New(store, registry, 10, 10.0)

	candidates := o.Rank(bp, 2)
	require.Len(t, candidates, 2)
	assert.Equal(t, "nearer", candidates[0].Preset.Name)
	assert.Equal(t, "farther", candidates[1].Preset.Name)
}

func TestRankTruncatesToK(t *testing.T) {
	registry := engines.NewRegistry()

	var records []catalogue.Record
	var vectors [][]float64
	query := Vectorize(&preset.Blueprint{OverallVibe: "x"}).Vector
	for i := 0; i < 8; i++ {
		records = append(records, flatRecord("p", 2))
		vectors = append(vectors, vectorAt(query, float64(i)+0.5))
	}

	store := catalogue.New(registry, records, nil, vectors)
	o := New(store, registry, 10, 10.0)

	assert.Len(t, o.Rank(&preset.Blueprint{OverallVibe: "x"}, 3), 3)
	assert.Nil(t, o.Rank(&preset.Blueprint{OverallVibe: "x"}, 0))
}

func TestRankSkipsFilteredEntries(t *testing.T) {
	registry := engines.NewRegistry()

	bp := &preset.Blueprint{OverallVibe: "clean"}
	query := Vectorize(bp).Vector

	// The utility-tainted record is nearest, but it was filtered from the
	// addressable catalogue; its neighbor hit must be skipped, not crash.
	records := []catalogue.Record{
		flatRecord("utility-tainted", 2, 53),
		flatRecord("honest", 7),
	}
	vectors := [][]float64{
		vectorAt(query, 0.1),
		vectorAt(query, 0.6),
	}

	store := catalogue.New(registry, records, nil, vectors)
	require.Equal(t, 1, store.Size())
	o := New(store, registry, 10, 10.0)

	candidates := o.Rank(bp, 2)
	require.Len(t, candidates, 1)
	assert.Equal(t, "honest", candidates[0].Preset.Name)
}

func TestFindBestPresetSkipsFilteredNearest(t *testing.T) {
	registry := engines.NewRegistry()

	bp := &preset.Blueprint{OverallVibe: "clean"}
	query := Vectorize(bp).Vector

	// The filtered entry is the nearest vector. It must not eat the neighbor
	// budget: the honest record behind it is still the best preset, and the
	// blueprint-only fallback must not trigger.
	store := catalogue.New(registry,
		[]catalogue.Record{
			flatRecord("utility-tainted", 2, 53),
			flatRecord("honest", 7),
		},
		nil,
		[][]float64{vectorAt(query, 0.1), vectorAt(query, 0.6)})
	require.Equal(t, 1, store.Size())
	require.Equal(t, 2, store.VectorCount())

	o := New(store, registry, 10, 10.0)
	out := o.FindBestPreset(bp)
	assert.Equal(t, "honest", out.Name)
}

func TestRankEmptyCatalogue(t *testing.T) {
	registry := engines.NewRegistry()
	o := New(catalogue.NewEmpty(registry), registry, 10, 10.0)

	assert.Nil(t, o.Rank(&preset.Blueprint{OverallVibe: "void"}, 5))
}

func TestFindBestPresetFallsBackToBlueprint(t *testing.T) {
	registry := engines.NewRegistry()
	o := New(catalogue.NewEmpty(registry), registry, 10, 10.0)

	bp := &preset.Blueprint{
		OverallVibe:  "warm vintage",
		CreativeName: "Amber Glow",
		Slots:        []preset.BlueprintSlot{{Slot: 1, EngineID: 15}},
	}

	out := o.FindBestPreset(bp)
	require.NotNil(t, out)
	assert.Equal(t, "Amber Glow", out.Name)
	assert.Equal(t, 15, out.Slots[0].EngineID)
	assert.Equal(t, 1, out.ActiveSlotCount())
}

func TestFindBestPresetUsesCatalogue(t *testing.T) {
	registry := engines.NewRegistry()

	bp := &preset.Blueprint{OverallVibe: "plain"}
	query := Vectorize(bp).Vector

	store := catalogue.New(registry,
		[]catalogue.Record{flatRecord("The Match", 7)},
		nil,
		[][]float64{vectorAt(query, 0.3)})
	o := New(store, registry, 10, 10.0)

	out := o.FindBestPreset(bp)
	assert.Equal(t, "The Match", out.Name)
}
