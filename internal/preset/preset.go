// Package preset defines the preset and blueprint types shared by the
// retrieval and validation cores, plus the flat-slot wire codec the plugin
// speaks.
package preset

import (
	"fmt"

	"github.com/tidwall/gjson"
)

const (
	// NumSlots is the number of effect slots in a preset.
	NumSlots = 6

	// ParamsPerSlot is the external parameter cardinality per slot.
	ParamsPerSlot = 15
)

// Slot is one position in the effect chain.
type Slot struct {
	EngineID int       `json:"engine_id"`
	Bypass   float64   `json:"bypass"`
	Mix      float64   `json:"mix"`
	Solo     float64   `json:"solo"`
	Params   []float64 `json:"params"`
}

// Active reports whether the slot holds an engine that is not bypassed.
func (s Slot) Active() bool {
	return s.EngineID != 0 && s.Bypass < 0.5
}

// BypassSlot returns an empty bypassed slot with default-centered params.
func BypassSlot() Slot {
	params := make([]float64, ParamsPerSlot)
	for i := range params {
		params[i] = 0.5
	}
	return Slot{EngineID: 0, Bypass: 1.0, Mix: 0.5, Solo: 0.0, Params: params}
}

// ValidationMetadata is appended to a preset by the repair pipeline.
type ValidationMetadata struct {
	Valid    bool     `json:"valid"`
	Score    float64  `json:"score"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Fixes    []string `json:"fixes,omitempty"`
}

// Preset is the mutable unit flowing through both cores.
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Slots       []Slot `json:"slots"`

	Validation *ValidationMetadata `json:"validation,omitempty"`
}

// Clone returns a deep copy. Pipeline stages operate on working copies so
// callers keep their input untouched.
func (p *Preset) Clone() *Preset {
	out := &Preset{Name: p.Name, Description: p.Description}
	out.Slots = make([]Slot, len(p.Slots))
	for i, s := range p.Slots {
		out.Slots[i] = s
		out.Slots[i].Params = append([]float64(nil), s.Params...)
	}
	if p.Validation != nil {
		v := *p.Validation
		v.Errors = append([]string(nil), p.Validation.Errors...)
		v.Warnings = append([]string(nil), p.Validation.Warnings...)
		v.Fixes = append([]string(nil), p.Validation.Fixes...)
		out.Validation = &v
	}
	return out
}

// ActiveSlotCount returns the number of non-bypassed engine slots.
func (p *Preset) ActiveSlotCount() int {
	n := 0
	for _, s := range p.Slots {
		if s.Active() {
			n++
		}
	}
	return n
}

// EngineIDs returns the set of engine ids used by the preset (bypass excluded).
func (p *Preset) EngineIDs() map[int]bool {
	ids := make(map[int]bool)
	for _, s := range p.Slots {
		if s.EngineID != 0 {
			ids[s.EngineID] = true
		}
	}
	return ids
}

// ToWire renders the preset in the flat-slot wire shape the plugin expects:
// name plus slot{1..6}_engine/_bypass/_mix/_solo/_param{1..15}. No
// master/global keys are emitted.
func (p *Preset) ToWire() map[string]any {
	wire := make(map[string]any, 1+NumSlots*(4+ParamsPerSlot))
	wire["name"] = p.Name
	for i := 0; i < NumSlots; i++ {
		slot := BypassSlot()
		if i < len(p.Slots) {
			slot = p.Slots[i]
		}
		prefix := fmt.Sprintf("slot%d_", i+1)
		wire[prefix+"engine"] = slot.EngineID
		wire[prefix+"bypass"] = slot.Bypass
		wire[prefix+"mix"] = slot.Mix
		wire[prefix+"solo"] = slot.Solo
		for j := 0; j < ParamsPerSlot; j++ {
			val := 0.5
			if j < len(slot.Params) {
				val = slot.Params[j]
			}
			wire[fmt.Sprintf("%sparam%d", prefix, j+1)] = val
		}
	}
	return wire
}

// FromWire parses a preset document in either wire shape: flat-slot keys or
// the legacy engines array. Missing keys fall back to bypass defaults; the
// parse is tolerant and never fails on shape problems (the repair pipeline
// handles those).
func FromWire(doc []byte) *Preset {
	root := gjson.ParseBytes(doc)
	if engines := root.Get("engines"); engines.IsArray() {
		return fromLegacyWire(root, engines)
	}
	p := &Preset{Name: root.Get("name").String()}
	if p.Name == "" {
		p.Name = root.Get("creative_name").String()
	}
	p.Description = root.Get("description").String()

	for i := 1; i <= NumSlots; i++ {
		prefix := fmt.Sprintf("slot%d_", i)
		slot := Slot{
			EngineID: int(root.Get(prefix + "engine").Int()),
			Bypass:   root.Get(prefix + "bypass").Float(),
			Mix:      root.Get(prefix + "mix").Float(),
			Solo:     root.Get(prefix + "solo").Float(),
		}
		for j := 1; j <= ParamsPerSlot; j++ {
			key := fmt.Sprintf("%sparam%d", prefix, j)
			if v := root.Get(key); v.Exists() {
				slot.Params = append(slot.Params, v.Float())
			} else {
				slot.Params = append(slot.Params, 0.5)
			}
		}
		if slot.EngineID == 0 && !root.Get(prefix + "engine").Exists() {
			slot.Bypass = 1.0
		}
		p.Slots = append(p.Slots, slot)
	}
	return p
}

// fromLegacyWire decodes the engines-array shape. Wire slots are 0-based;
// entries outside the chain are dropped silently and unfilled slots stay
// bypassed.
func fromLegacyWire(root, engines gjson.Result) *Preset {
	p := &Preset{Name: root.Get("name").String()}
	if p.Name == "" {
		p.Name = root.Get("creative_name").String()
	}
	p.Description = root.Get("description").String()

	for i := 0; i < NumSlots; i++ {
		p.Slots = append(p.Slots, BypassSlot())
	}
	engines.ForEach(func(_, e gjson.Result) bool {
		i := int(e.Get("slot").Int())
		if i < 0 || i >= NumSlots {
			return true
		}
		slot := BypassSlot()
		slot.EngineID = int(e.Get("type").Int())
		slot.Bypass = 0.0
		slot.Mix = e.Get("mix").Float()
		j := 0
		e.Get("params").ForEach(func(_, v gjson.Result) bool {
			if j < ParamsPerSlot {
				slot.Params[j] = v.Float()
			}
			j++
			return true
		})
		p.Slots[i] = slot
		return true
	})
	return p
}

// BlueprintSlot is one requested engine/slot pair in a creative request.
type BlueprintSlot struct {
	Slot      int    `json:"slot"`
	EngineID  int    `json:"engine_id"`
	Character string `json:"character,omitempty"`
}

// Blueprint is the structured creative-intent request consumed by the
// retrieval core. It is produced externally (by the Visionary) and treated
// as input only.
type Blueprint struct {
	OverallVibe  string          `json:"overall_vibe"`
	Slots        []BlueprintSlot `json:"slots"`
	CreativeName string          `json:"creative_name,omitempty"`
}

// RequestedEngines returns the set of explicitly requested engine ids (>0).
func (b *Blueprint) RequestedEngines() map[int]bool {
	ids := make(map[int]bool)
	for _, s := range b.Slots {
		if s.EngineID > 0 {
			ids[s.EngineID] = true
		}
	}
	return ids
}
