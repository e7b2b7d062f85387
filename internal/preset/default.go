package preset

import "github.com/chimera-audio/trinity-api/pkg/embedded"

// SafeDefault returns the hardcoded fallback chain (compressor -> EQ ->
// reverb) substituted when a preset comes out of repair structurally
// invalid. Callers get a fresh copy each time.
func SafeDefault() *Preset {
	return FromWire(embedded.SafeDefaultPresetJSON)
}
