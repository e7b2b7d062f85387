// Package visionary turns free-form sound requests into structured creative
// blueprints via an LLM. The rest of the system never parses natural language;
// it consumes the blueprint this package produces.
package visionary

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chimera-audio/trinity-api/internal/engines"
	"github.com/chimera-audio/trinity-api/internal/llm"
	"github.com/chimera-audio/trinity-api/internal/logger"
	"github.com/chimera-audio/trinity-api/internal/metrics"
	"github.com/chimera-audio/trinity-api/internal/observability"
	"github.com/chimera-audio/trinity-api/internal/preset"
	"github.com/chimera-audio/trinity-api/internal/prompt"
)

var sentryMetrics = metrics.NewSentryMetrics()

// Visionary is the blueprint-generation boundary. It fails open: when the
// provider call or parsing fails, the caller still gets a usable vibe-only
// blueprint built from the raw prompt.
type Visionary struct {
	factory  *llm.ProviderFactory
	builder  *prompt.Builder
	registry *engines.Registry
	model    string
	cw       *metrics.Client
}

// New creates a Visionary using the given provider factory and model.
func New(factory *llm.ProviderFactory, registry *engines.Registry, model string, cw *metrics.Client) *Visionary {
	return &Visionary{
		factory:  factory,
		builder:  prompt.NewPromptBuilder(registry),
		registry: registry,
		model:    model,
		cw:       cw,
	}
}

// blueprintSchema is the structured-output contract for blueprint generation.
func blueprintSchema() *llm.OutputSchema {
	return &llm.OutputSchema{
		Name:        "creative_blueprint",
		Description: "Structured creative intent for an effect preset",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"overall_vibe": map[string]any{"type": "string"},
				"slots": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"slot":      map[string]any{"type": "integer"},
							"engine_id": map[string]any{"type": "integer"},
							"character": map[string]any{"type": "string"},
						},
						"required":             []string{"slot", "engine_id", "character"},
						"additionalProperties": false,
					},
				},
				"creative_name": map[string]any{"type": "string"},
			},
			"required":             []string{"overall_vibe", "slots", "creative_name"},
			"additionalProperties": false,
		},
	}
}

// Dream produces a blueprint for the given sound request. Never returns nil.
func (v *Visionary) Dream(ctx context.Context, userPrompt string) *preset.Blueprint {
	startTime := time.Now()
	fallback := &preset.Blueprint{OverallVibe: userPrompt}

	systemPrompt, err := v.builder.BuildVisionaryPrompt()
	if err != nil {
		logger.Warn("Visionary prompt build failed, falling back to vibe-only blueprint", logger.Fields{"error": err.Error()})
		return fallback
	}

	provider, err := v.factory.GetProvider(ctx, v.model, "")
	if err != nil {
		logger.Warn("Visionary provider unavailable, falling back to vibe-only blueprint", logger.Fields{"error": err.Error()})
		return fallback
	}

	inputArray := []map[string]any{
		{"role": "user", "content": userPrompt},
	}

	trace := observability.GetClient().StartTrace(ctx, "visionary-dream", map[string]any{
		"prompt": userPrompt,
	})
	defer trace.Finish()
	gen := trace.Generation("blueprint", map[string]any{"provider": provider.Name()})

	resp, err := provider.Generate(ctx, &llm.GenerationRequest{
		Model:        v.model,
		InputArray:   inputArray,
		SystemPrompt: systemPrompt,
		OutputSchema: blueprintSchema(),
	})
	if err != nil {
		gen.SetLevel("ERROR")
		gen.Output(err.Error())
		gen.Finish()
		logger.Warn("Visionary generation failed, falling back to vibe-only blueprint", logger.Fields{
			"error": err.Error(),
			"model": v.model,
		})
		return fallback
	}
	gen.LogProviderResponse(v.model, inputArray, resp.RawOutput, resp.Usage, nil)
	gen.Finish()

	if total, in, out, reasoning, ok := llm.UsageTokens(resp.Usage); ok {
		v.cw.RecordTokenUsage(v.model, total, in, out, reasoning)
		sentryMetrics.RecordTokenUsage(ctx, v.model, total, in, out, reasoning)
	}

	bp, err := v.parseBlueprint(resp.RawOutput)
	if err != nil {
		logger.Warn("Visionary returned unparseable blueprint, falling back to vibe-only blueprint", logger.Fields{"error": err.Error()})
		return fallback
	}
	if bp.OverallVibe == "" {
		bp.OverallVibe = userPrompt
	}

	logger.Info("Visionary blueprint ready", logger.Fields{
		"duration_ms": time.Since(startTime).Milliseconds(),
		"slots":       len(bp.Slots),
		"name":        bp.CreativeName,
	})
	return bp
}

// parseBlueprint decodes and sanitizes the model output. Unknown and utility
// engines are dropped rather than failing the whole request.
func (v *Visionary) parseBlueprint(raw string) (*preset.Blueprint, error) {
	var bp preset.Blueprint
	if err := json.Unmarshal([]byte(raw), &bp); err != nil {
		return nil, fmt.Errorf("failed to parse blueprint JSON: %w", err)
	}

	kept := bp.Slots[:0]
	for _, s := range bp.Slots {
		if s.EngineID <= 0 || !v.registry.IsValidID(s.EngineID) {
			continue
		}
		if v.registry.IsUtility(s.EngineID) {
			continue
		}
		if s.Slot < 1 || s.Slot > preset.NumSlots {
			s.Slot = len(kept) + 1
		}
		kept = append(kept, s)
		if len(kept) == preset.NumSlots {
			break
		}
	}
	bp.Slots = kept
	return &bp, nil
}
