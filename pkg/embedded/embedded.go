// Package embedded carries data files compiled into the binary.
package embedded

import (
	_ "embed"
)

// SafeDefaultPresetJSON is the hardcoded fallback chain (compressor -> EQ ->
// reverb) substituted when validation reports a structurally invalid preset.
//
//go:embed data/safe_default_preset.json
var SafeDefaultPresetJSON []byte

//go:embed data/visionary_system_prompt.txt
var VisionarySystemPromptTxt []byte

//go:embed data/calculator_system_prompt.txt
var CalculatorSystemPromptTxt []byte
