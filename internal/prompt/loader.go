package prompt

import (
	"strings"

	"github.com/chimera-audio/trinity-api/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetVisionarySystemPrompt loads the blueprint-generation system prompt
func (l *Loader) GetVisionarySystemPrompt() (string, error) {
	return strings.TrimSpace(string(embedded.VisionarySystemPromptTxt)), nil
}

// GetCalculatorSystemPrompt loads the parameter-refinement system prompt
func (l *Loader) GetCalculatorSystemPrompt() (string, error) {
	return strings.TrimSpace(string(embedded.CalculatorSystemPromptTxt)), nil
}
