package prompt

import (
	"fmt"
	"strings"

	"github.com/chimera-audio/trinity-api/internal/engines"
)

// Builder assembles the final system prompts sent to the LLM boundaries.
// The visionary prompt is the embedded base text plus the live engine
// catalogue, so the model only ever sees engines the registry knows about.
type Builder struct {
	loader   *Loader
	registry *engines.Registry
}

// NewPromptBuilder creates a new prompt builder
func NewPromptBuilder(registry *engines.Registry) *Builder {
	return &Builder{
		loader:   NewPromptLoader(),
		registry: registry,
	}
}

// BuildVisionaryPrompt returns the blueprint prompt with the engine list
// appended. Utility engines and the bypass engine are left out.
func (b *Builder) BuildVisionaryPrompt() (string, error) {
	base, err := b.loader.GetVisionarySystemPrompt()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("\n\nAvailable engines (engine_id: name [category]):\n")
	for _, d := range b.registry.All() {
		if d.ID == engines.EngineNone || d.Category == engines.CategoryUtility {
			continue
		}
		fmt.Fprintf(&sb, "%d: %s [%s]\n", d.ID, d.Name, d.Category)
	}
	return sb.String(), nil
}

// BuildCalculatorPrompt returns the refinement prompt unchanged. The preset
// itself travels in the user message, not the system prompt.
func (b *Builder) BuildCalculatorPrompt() (string, error) {
	return b.loader.GetCalculatorSystemPrompt()
}
