// Script to verify every report section prompt resolves, either from
// Langfuse, the local prompt directory, or the compiled-in defaults.
// Usage: go run scripts/prompt-check/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ard-guilherme/looper-reports/internal/report"
)

func main() {
	prompts := &report.LangfusePrompts{
		BaseURL:   os.Getenv("LANGFUSE_BASE_URL"),
		PublicKey: os.Getenv("LANGFUSE_PUBLIC_KEY"),
		SecretKey: os.Getenv("LANGFUSE_SECRET_KEY"),
		PromptDir: getEnv("PROMPT_DIR", "prompts"),
	}

	fmt.Println("=== Section Prompt Check ===")
	fmt.Printf("Langfuse:   %s\n", sourceLabel(prompts.BaseURL))
	fmt.Printf("Prompt dir: %s\n", prompts.PromptDir)
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	failures := 0
	for _, spec := range report.SectionOrder {
		prompt, err := prompts.SectionPrompt(ctx, spec.ID)
		if err != nil {
			fmt.Printf("✗ %-20s %v\n", spec.ID, err)
			failures++
			continue
		}

		var missing []string
		for _, token := range []string{"{{ALUNO}}", "{{CONTEXTO}}"} {
			if !strings.Contains(prompt, token) {
				missing = append(missing, token)
			}
		}
		if len(missing) > 0 {
			fmt.Printf("✗ %-20s missing placeholders: %s\n", spec.ID, strings.Join(missing, ", "))
			failures++
			continue
		}

		fmt.Printf("✓ %-20s %d chars\n", spec.ID, len(prompt))
	}

	if failures > 0 {
		log.Fatalf("%d section prompt(s) failed the check", failures)
	}
	fmt.Println("\nAll section prompts resolved.")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func sourceLabel(baseURL string) string {
	if baseURL == "" {
		return "(not configured, using local/default prompts)"
	}
	return baseURL
}
