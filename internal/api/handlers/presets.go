package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/chimera-audio/trinity-api/internal/alchemist"
	"github.com/chimera-audio/trinity-api/internal/calculator"
	"github.com/chimera-audio/trinity-api/internal/catalogue"
	"github.com/chimera-audio/trinity-api/internal/config"
	"github.com/chimera-audio/trinity-api/internal/engines"
	"github.com/chimera-audio/trinity-api/internal/llm"
	"github.com/chimera-audio/trinity-api/internal/logger"
	"github.com/chimera-audio/trinity-api/internal/metrics"
	"github.com/chimera-audio/trinity-api/internal/oracle"
	"github.com/chimera-audio/trinity-api/internal/preset"
	"github.com/chimera-audio/trinity-api/internal/visionary"
	"github.com/gin-gonic/gin"
)

const (
	defaultMatchCount = 5
	maxMatchCount     = 20
	maxRequestBody    = 1 << 20 // 1 MiB
)

// PresetsHandler wires the generation pipeline behind HTTP: blueprint,
// retrieval, optional refinement, then validation.
type PresetsHandler struct {
	cfg       *config.Config
	registry  *engines.Registry
	store     *catalogue.Store
	oracle    *oracle.Oracle
	alchemist *alchemist.Alchemist
	visionary *visionary.Visionary
	calc      *calculator.Calculator
	cw        *metrics.Client
}

var sentryMetrics = metrics.NewSentryMetrics()

func NewPresetsHandler(cfg *config.Config, registry *engines.Registry, store *catalogue.Store, cw *metrics.Client) *PresetsHandler {
	factory := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey)
	return &PresetsHandler{
		cfg:       cfg,
		registry:  registry,
		store:     store,
		oracle:    oracle.New(store, registry, cfg.OversampleFactor, cfg.EngineBoost),
		alchemist: alchemist.New(registry),
		visionary: visionary.New(factory, registry, cfg.VisionaryModel, cw),
		calc:      calculator.New(factory, registry, cfg.CalculatorModel, cw),
		cw:        cw,
	}
}

type GeneratePresetRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Refine bool   `json:"refine"` // run the parameter-refinement pass
}

// Generate runs the full prompt-to-preset pipeline
func (h *PresetsHandler) Generate(c *gin.Context) {
	startTime := time.Now()

	var req GeneratePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	bp := h.visionary.Dream(ctx, req.Prompt)

	retrievalStart := time.Now()
	result := h.oracle.FindBestPreset(bp)
	h.cw.RecordRetrieval(time.Since(retrievalStart), h.store.Size() > 0, h.store.Size())
	sentryMetrics.RecordRetrieval(ctx, time.Since(retrievalStart), h.store.Size() > 0, h.store.Size())

	if req.Refine {
		result = h.calc.Refine(ctx, req.Prompt, result)
	}

	validationStart := time.Now()
	validated, report := h.alchemist.Validate(result)
	h.cw.RecordValidation(time.Since(validationStart), report.Valid, report.Score, len(report.Fixes))
	sentryMetrics.RecordValidation(ctx, time.Since(validationStart), report.Valid, report.Score)

	if !report.Valid {
		logger.Warn("Generated preset failed validation, substituting safe default", logger.Fields{
			"request_id": c.GetString("request_id"),
			"score":      report.Score,
			"errors":     report.Errors,
		})
		validated = preset.SafeDefault()
		validated, report = h.alchemist.Validate(validated)
	}

	h.cw.RecordGenerationDuration(time.Since(startTime), report.Valid)
	sentryMetrics.RecordGenerationDuration(ctx, time.Since(startTime), report.Valid)

	out := preset.Format(validated)

	c.JSON(http.StatusOK, gin.H{
		"request_id": c.GetString("request_id"),
		"preset":     out.ToWire(),
		"blueprint":  bp,
		"validation": gin.H{
			"valid":    report.Valid,
			"score":    report.Score,
			"errors":   report.Errors,
			"warnings": report.Warnings,
			"fixes":    report.Fixes,
		},
	})
}

type MatchRequest struct {
	Blueprint preset.Blueprint `json:"blueprint" binding:"required"`
	K         int              `json:"k"`
}

type matchCandidate struct {
	Rank             int            `json:"rank"`
	Name             string         `json:"name"`
	Distance         float64        `json:"distance"`
	SimilarityScore  float64        `json:"similarity_score"`
	EngineMatchScore float64        `json:"engine_match_score"`
	CombinedScore    float64        `json:"combined_score"`
	Preset           map[string]any `json:"preset"`
}

// Match runs retrieval only and returns the ranked candidate list
func (h *PresetsHandler) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	k := req.K
	if k <= 0 {
		k = defaultMatchCount
	}
	if k > maxMatchCount {
		k = maxMatchCount
	}

	retrievalStart := time.Now()
	candidates := h.oracle.Rank(&req.Blueprint, k)
	h.cw.RecordRetrieval(time.Since(retrievalStart), len(candidates) > 0, len(candidates))
	sentryMetrics.RecordRetrieval(c.Request.Context(), time.Since(retrievalStart), len(candidates) > 0, len(candidates))

	out := make([]matchCandidate, len(candidates))
	for i, cand := range candidates {
		out[i] = matchCandidate{
			Rank:             i + 1,
			Name:             cand.Preset.Name,
			Distance:         cand.Distance,
			SimilarityScore:  cand.SimilarityScore,
			EngineMatchScore: cand.EngineMatchScore,
			CombinedScore:    cand.CombinedScore,
			Preset:           preset.Format(cand.Preset).ToWire(),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": c.GetString("request_id"),
		"candidates": out,
	})
}

// Validate runs the repair pipeline on a raw preset document. The body is the
// preset itself, in either wire shape.
func (h *PresetsHandler) Validate(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxRequestBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty request body"})
		return
	}

	p := preset.FromWire(body)

	validationStart := time.Now()
	validated, report := h.alchemist.Validate(p)
	h.cw.RecordValidation(time.Since(validationStart), report.Valid, report.Score, len(report.Fixes))
	sentryMetrics.RecordValidation(c.Request.Context(), time.Since(validationStart), report.Valid, report.Score)

	out := preset.Format(validated)

	c.JSON(http.StatusOK, gin.H{
		"request_id": c.GetString("request_id"),
		"preset":     out.ToWire(),
		"validation": gin.H{
			"valid":    report.Valid,
			"score":    report.Score,
			"errors":   report.Errors,
			"warnings": report.Warnings,
			"fixes":    report.Fixes,
		},
	})
}
