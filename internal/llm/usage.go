package llm

import (
	"github.com/openai/openai-go/responses"
	"google.golang.org/genai"
)

// UsageTokens extracts token counts from a provider usage payload. Returns
// ok=false when the shape is not one of the known provider types.
func UsageTokens(usage any) (total, input, output, reasoning int, ok bool) {
	switch u := usage.(type) {
	case responses.ResponseUsage:
		return int(u.TotalTokens), int(u.InputTokens), int(u.OutputTokens),
			int(u.OutputTokensDetails.ReasoningTokens), true
	case *genai.GenerateContentResponseUsageMetadata:
		if u == nil {
			return 0, 0, 0, 0, false
		}
		return int(u.TotalTokenCount), int(u.PromptTokenCount),
			int(u.CandidatesTokenCount), 0, true
	}
	return 0, 0, 0, 0, false
}
