package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProviderInfersOpenAIFromModel(t *testing.T) {
	f := NewProviderFactory("sk-test", "")

	p, err := f.GetProvider(context.Background(), "gpt-5-mini", "")
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}

func TestGetProviderDefaultsUnknownModelsToOpenAI(t *testing.T) {
	f := NewProviderFactory("sk-test", "")

	p, err := f.GetProvider(context.Background(), "some-future-model", "")
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}

func TestGetProviderGeminiModelRequiresGeminiKey(t *testing.T) {
	f := NewProviderFactory("sk-test", "")

	_, err := f.GetProvider(context.Background(), "gemini-2.5-flash", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini API key")
}

func TestGetProviderExplicitNameWinsOverModel(t *testing.T) {
	f := NewProviderFactory("sk-test", "")

	// The model looks like Gemini, but the explicit provider decides.
	p, err := f.GetProvider(context.Background(), "gemini-2.5-flash", "openai")
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}

func TestGetProviderMissingKeys(t *testing.T) {
	f := NewProviderFactory("", "")

	_, err := f.GetProvider(context.Background(), "gpt-5", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai API key")

	_, err = f.GetProvider(context.Background(), "", "gemini")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini API key")
}

func TestGetProviderUnknownName(t *testing.T) {
	f := NewProviderFactory("sk-test", "key")

	_, err := f.GetProvider(context.Background(), "gpt-5", "anthropic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}
