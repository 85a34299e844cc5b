package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wassat/website/internal/i18n"
	"github.com/wassat/website/internal/llm"
)

// Request is one generation call.
type Request struct {
	Prompt            string
	SystemInstruction string
	Temperature       float64
}

// Generator produces the assistant's reply.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// ProviderGenerator adapts an llm.Provider.
type ProviderGenerator struct {
	Provider  llm.Provider
	Model     string
	MaxTokens int
	// Timeout bounds one completion; zero leaves ctx as is.
	Timeout time.Duration
	// Logger receives token usage per turn; nil disables it.
	Logger *slog.Logger
}

func (g ProviderGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}
	resp, err := g.Provider.Complete(ctx, llm.CompletionRequest{
		Model:       g.Model,
		System:      req.SystemInstruction,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: req.Prompt}},
		MaxTokens:   g.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s completion: %w", g.Provider.Name(), err)
	}
	if g.Logger != nil {
		model := resp.Model
		if model == "" {
			model = g.Model
		}
		g.Logger.Debug("chat completion",
			"provider", g.Provider.Name(),
			"model", model,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
			"cost_usd", resp.Usage.Cost(model),
		)
	}
	return resp.Content, nil
}

const systemInstructionTemplate = `You are the information assistant on the website of a senior physician for pulmonology at JKU University Hospital Linz whose focus is thoracic oncology.
Only answer general questions about pulmonology, lung cancer and thoracic oncology, and about the physician's lectures, research and second-opinion service. Politely decline anything outside this scope.
Never give an individual diagnosis or a treatment recommendation for a specific person.
Every answer must end with a short note that it is general information and no substitute for a personal medical consultation.
Keep answers concise. Answer exclusively in %s (language code %q).`

// SystemInstruction returns the persona instruction for the active
// language.
func SystemInstruction(lang i18n.Language) string {
	name := "German"
	if lang == i18n.English {
		name = "English"
	}
	return fmt.Sprintf(systemInstructionTemplate, name, string(lang))
}
