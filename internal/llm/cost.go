package llm

import "strings"

// modelPricing holds per-model pricing in USD per 1M tokens.
type modelPricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// priceTable covers the models the chat assistant is configured with.
var priceTable = map[string]modelPricing{
	// Google models
	"gemini-2.0-flash":      {InputPerMillion: 0.10, OutputPerMillion: 0.40},
	"gemini-2.0-flash-lite": {InputPerMillion: 0.075, OutputPerMillion: 0.30},
	"gemini-1.5-flash":      {InputPerMillion: 0.075, OutputPerMillion: 0.30},
	"gemini-1.5-pro":        {InputPerMillion: 1.25, OutputPerMillion: 5.00},

	// OpenAI models
	"gpt-4o":      {InputPerMillion: 2.50, OutputPerMillion: 10.00},
	"gpt-4o-mini": {InputPerMillion: 0.15, OutputPerMillion: 0.60},

	// Anthropic models
	"claude-3-5-haiku":  {InputPerMillion: 0.80, OutputPerMillion: 4.00},
	"claude-3-5-sonnet": {InputPerMillion: 3.00, OutputPerMillion: 15.00},
}

// EstimateCost returns the cost in USD of a completion, or 0 for a model
// without a known price.
func EstimateCost(model string, inputTokens, outputTokens int) float64 {
	pricing, ok := lookupPrice(model)
	if !ok {
		return 0
	}
	return (float64(inputTokens)*pricing.InputPerMillion + float64(outputTokens)*pricing.OutputPerMillion) / 1e6
}

// lookupPrice matches versioned names such as gemini-2.0-flash-001 to the
// longest listed family name.
func lookupPrice(model string) (modelPricing, bool) {
	if p, ok := priceTable[model]; ok {
		return p, true
	}
	best := ""
	for name := range priceTable {
		if strings.HasPrefix(model, name+"-") && len(name) > len(best) {
			best = name
		}
	}
	if best == "" {
		return modelPricing{}, false
	}
	return priceTable[best], true
}
