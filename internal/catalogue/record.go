// Package catalogue loads the preset catalogue, its metadata and the
// precomputed vector index, and answers nearest-neighbor queries over it.
package catalogue

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/chimera-audio/trinity-api/internal/preset"
)

// FlatSlot is one slot of a flat-slot catalogue record.
type FlatSlot struct {
	Engine int
	Bypass float64
	Mix    float64
	Solo   float64
	Params []float64
}

// FlatSlotRecord is a catalogue entry in the flat-slot wire shape
// (slot{1..6}_engine, slot{1..6}_param{1..15}, ...).
type FlatSlotRecord struct {
	ID       string
	Name     string
	Category string
	Slots    [preset.NumSlots]FlatSlot
}

// LegacyEngine is one entry of a legacy engines-array record. Slot is
// 0-based on the wire.
type LegacyEngine struct {
	Slot   int
	Type   int
	Mix    float64
	Params []float64
}

// LegacyRecord is a catalogue entry in the legacy engines-array wire shape.
type LegacyRecord struct {
	ID       string
	Name     string
	Category string
	Engines  []LegacyEngine
}

// Record is the tagged union over the two wire shapes. Exactly one of Flat
// and Legacy is set.
type Record struct {
	Flat   *FlatSlotRecord
	Legacy *LegacyRecord
}

// Name returns the record's creative name, whichever shape carries it.
func (r Record) Name() string {
	switch {
	case r.Flat != nil:
		return r.Flat.Name
	case r.Legacy != nil:
		return r.Legacy.Name
	}
	return ""
}

// EngineIDs returns the set of engine ids the record uses (bypass excluded),
// supporting both wire shapes.
func (r Record) EngineIDs() map[int]bool {
	ids := make(map[int]bool)
	switch {
	case r.Flat != nil:
		for _, s := range r.Flat.Slots {
			if s.Engine != 0 {
				ids[s.Engine] = true
			}
		}
	case r.Legacy != nil:
		for _, e := range r.Legacy.Engines {
			if e.Type != 0 {
				ids[e.Type] = true
			}
		}
	}
	return ids
}

// ParseRecord decodes one catalogue entry, sniffing the wire shape once here
// rather than at every call site. Records with an "engines" array use the
// legacy shape; everything else is read as flat-slot.
func ParseRecord(doc gjson.Result) Record {
	if engines := doc.Get("engines"); engines.IsArray() {
		rec := &LegacyRecord{
			ID:       doc.Get("id").String(),
			Name:     firstNonEmpty(doc.Get("creative_name").String(), doc.Get("name").String()),
			Category: doc.Get("category").String(),
		}
		engines.ForEach(func(_, e gjson.Result) bool {
			engine := LegacyEngine{
				Slot: int(e.Get("slot").Int()),
				Type: int(e.Get("type").Int()),
				Mix:  e.Get("mix").Float(),
			}
			e.Get("params").ForEach(func(_, v gjson.Result) bool {
				engine.Params = append(engine.Params, v.Float())
				return true
			})
			rec.Engines = append(rec.Engines, engine)
			return true
		})
		return Record{Legacy: rec}
	}

	rec := &FlatSlotRecord{
		ID:       doc.Get("id").String(),
		Name:     firstNonEmpty(doc.Get("creative_name").String(), doc.Get("name").String()),
		Category: doc.Get("category").String(),
	}
	for i := 0; i < preset.NumSlots; i++ {
		prefix := fmt.Sprintf("slot%d_", i+1)
		slot := FlatSlot{
			Engine: int(doc.Get(prefix + "engine").Int()),
			Bypass: doc.Get(prefix + "bypass").Float(),
			Mix:    doc.Get(prefix + "mix").Float(),
			Solo:   doc.Get(prefix + "solo").Float(),
		}
		for j := 1; j <= preset.ParamsPerSlot; j++ {
			slot.Params = append(slot.Params, doc.Get(fmt.Sprintf("%sparam%d", prefix, j)).Float())
		}
		rec.Slots[i] = slot
	}
	return Record{Flat: rec}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
