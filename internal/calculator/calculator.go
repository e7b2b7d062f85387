// Package calculator nudges preset parameters toward the original request via
// an LLM. It only ever moves parameter values; engine assignments and routing
// flags are pinned to the input preset.
package calculator

import (
	"context"
	"encoding/json"
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

// Calculator is the parameter-refinement boundary. It fails open: any
// provider or parsing failure returns the input preset untouched.
type Calculator struct {
	factory *llm.ProviderFactory
	builder *prompt.Builder
	model   string
	cw      *metrics.Client
}

// New creates a Calculator using the given provider factory and model.
func New(factory *llm.ProviderFactory, registry *engines.Registry, model string, cw *metrics.Client) *Calculator {
	return &Calculator{
		factory: factory,
		builder: prompt.NewPromptBuilder(registry),
		model:   model,
		cw:      cw,
	}
}

// Refine asks the model for small parameter adjustments that push the preset
// toward the request. The returned preset always carries the input's engine
// ids, bypass and solo flags; only parameter and mix values may differ.
func (c *Calculator) Refine(ctx context.Context, userPrompt string, p *preset.Preset) *preset.Preset {
	startTime := time.Now()

	systemPrompt, err := c.builder.BuildCalculatorPrompt()
	if err != nil {
		logger.Warn("Calculator prompt build failed, keeping preset unchanged", logger.Fields{"error": err.Error()})
		return p
	}

	provider, err := c.factory.GetProvider(ctx, c.model, "")
	if err != nil {
		logger.Warn("Calculator provider unavailable, keeping preset unchanged", logger.Fields{"error": err.Error()})
		return p
	}

	wire, err := json.Marshal(p.ToWire())
	if err != nil {
		logger.Warn("Calculator could not serialize preset, keeping preset unchanged", logger.Fields{"error": err.Error()})
		return p
	}

	inputArray := []map[string]any{
		{"role": "user", "content": "Sound request: " + userPrompt},
		{"role": "user", "content": "Candidate preset:\n" + string(wire)},
	}

	trace := observability.GetClient().StartTrace(ctx, "calculator-refine", map[string]any{
		"prompt": userPrompt,
		"preset": p.Name,
	})
	defer trace.Finish()
	gen := trace.Generation("refine", map[string]any{"provider": provider.Name()})

	resp, err := provider.Generate(ctx, &llm.GenerationRequest{
		Model:        c.model,
		InputArray:   inputArray,
		SystemPrompt: systemPrompt,
	})
	if err != nil {
		gen.SetLevel("ERROR")
		gen.Output(err.Error())
		gen.Finish()
		logger.Warn("Calculator generation failed, keeping preset unchanged", logger.Fields{
			"error": err.Error(),
			"model": c.model,
		})
		return p
	}
	gen.LogProviderResponse(c.model, inputArray, resp.RawOutput, resp.Usage, nil)
	gen.Finish()

	if total, in, out, reasoning, ok := llm.UsageTokens(resp.Usage); ok {
		c.cw.RecordTokenUsage(c.model, total, in, out, reasoning)
		sentryMetrics.RecordTokenUsage(ctx, c.model, total, in, out, reasoning)
	}

	refined := preset.FromWire([]byte(resp.RawOutput))
	out := c.pinRouting(p, refined)

	logger.Info("Calculator refinement applied", logger.Fields{
		"duration_ms": time.Since(startTime).Milliseconds(),
		"preset":      out.Name,
	})
	return out
}

// pinRouting copies refined parameter values onto a clone of the original,
// keeping engine ids, bypass and solo exactly as they were.
func (c *Calculator) pinRouting(original, refined *preset.Preset) *preset.Preset {
	out := original.Clone()
	for i := range out.Slots {
		if i >= len(refined.Slots) {
			break
		}
		r := refined.Slots[i]
		out.Slots[i].Mix = clamp01(r.Mix)
		for j := range out.Slots[i].Params {
			if j < len(r.Params) {
				out.Slots[i].Params[j] = clamp01(r.Params[j])
			}
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
