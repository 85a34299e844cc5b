package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure the website.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Listen address.
	listenPrompt := promptui.Prompt{
		Label:   "Listen address",
		Default: cfg.Listen,
	}
	listen, err := listenPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("listen address: %w", err)
	}
	cfg.Listen = listen

	// 2. Assistant provider.
	providerPrompt := promptui.Select{
		Label: "Chat assistant provider",
		Items: []string{"gemini", "openai", "anthropic", "disabled"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	if providerStr == "disabled" {
		cfg.Chat.Enabled = false
	} else {
		cfg.Chat.Provider = ProviderType(providerStr)

		modelPrompt := promptui.Prompt{
			Label:   "Model",
			Default: DefaultModel(cfg.Chat.Provider),
		}
		model, err := modelPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("model: %w", err)
		}
		cfg.Chat.Model = model
	}

	// 3. Data directory for contact inquiries.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory for contact inquiries",
		Default: cfg.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	cfg.DataDir = dataDir

	// 4. CORS origins.
	corsPrompt := promptui.Prompt{
		Label:   "Allowed API origins (comma-separated, leave blank for same-origin only)",
		Default: "",
	}
	corsStr, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors origins: %w", err)
	}
	cfg.CORS.AllowedOrigins = splitAndTrim(corsStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Check for API key.
	if cfg.Chat.Enabled {
		if envVar := APIKeyEnvVar(cfg.Chat.Provider); os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running site serve.\n", envVar)
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
