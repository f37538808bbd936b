package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/ard-guilherme/looper-reports/internal/config"
	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/ard-guilherme/looper-reports/internal/llm"
)

// SectionID identifies one generated subdivision of the report.
type SectionID string

const (
	SectionOverview         SectionID = "overview"
	SectionNutrition        SectionID = "nutrition_analysis"
	SectionSleep            SectionID = "sleep_analysis"
	SectionTraining         SectionID = "training_analysis"
	SectionDetailedInsights SectionID = "detailed_insights"
	SectionRecommendations  SectionID = "recommendations"
	SectionConclusion       SectionID = "conclusion"
)

// SectionSpec pairs a section identifier with its presentation title and the
// name of its prompt template.
type SectionSpec struct {
	ID    SectionID
	Title string
}

// SectionOrder is the fixed generation order. The ordering is load-bearing:
// each section's output is folded into the context given to the next one,
// so reordering changes what downstream sections can reference.
var SectionOrder = []SectionSpec{
	{SectionOverview, "Visão Geral"},
	{SectionNutrition, "Análise Nutricional"},
	{SectionSleep, "Análise do Sono"},
	{SectionTraining, "Análise dos Treinos"},
	{SectionDetailedInsights, "Insights Detalhados"},
	{SectionRecommendations, "Recomendações"},
	{SectionConclusion, "Conclusão"},
}

// specByID resolves a section identifier, rejecting unknown ones before any
// external call is made.
func specByID(id SectionID) (SectionSpec, error) {
	for _, spec := range SectionOrder {
		if spec.ID == id {
			return spec, nil
		}
	}
	return SectionSpec{}, fmt.Errorf("%w: %q", domain.ErrUnknownSection, id)
}

// PromptSource resolves the prompt template for a section. Templates use the
// {{ALUNO}} and {{CONTEXTO}} placeholders.
type PromptSource interface {
	SectionPrompt(ctx context.Context, id SectionID) (string, error)
}

// Generator runs the chained per-section generation calls.
type Generator struct {
	llm     llm.SectionLLM
	prompts PromptSource
	policy  config.SectionFailurePolicy
}

func NewGenerator(client llm.SectionLLM, prompts PromptSource, policy config.SectionFailurePolicy) *Generator {
	return &Generator{
		llm:     client,
		prompts: prompts,
		policy:  policy,
	}
}

// Generate produces the sanitized text for a single section given the
// accumulated context so far.
func (g *Generator) Generate(ctx context.Context, id SectionID, chainedContext, studentName string) (string, error) {
	if _, err := specByID(id); err != nil {
		return "", err
	}

	template, err := g.prompts.SectionPrompt(ctx, id)
	if err != nil {
		return "", fmt.Errorf("%w: load prompt for %s: %v", llm.ErrGenerationRequest, id, err)
	}

	prompt := renderPrompt(template, studentName, chainedContext)

	raw, err := g.llm.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	return Sanitize(raw), nil
}

// GenerateAll folds the fixed section order over the accumulating context:
// the context passed to section N+1 textually contains everything passed to
// section N plus N's output. Returns the per-section outputs.
//
// Failure behavior follows the configured policy: abort propagates the first
// section fault; placeholder substitutes a visible inline error and keeps
// the chain going (the failed section contributes only its placeholder to
// downstream context).
func (g *Generator) GenerateAll(ctx context.Context, baseContext, studentName string) (map[SectionID]string, error) {
	outputs := make(map[SectionID]string, len(SectionOrder))
	chained := baseContext

	for _, spec := range SectionOrder {
		output, err := g.Generate(ctx, spec.ID, chained, studentName)
		if err != nil {
			if g.policy == config.SectionFailureAbort {
				return nil, fmt.Errorf("section %s: %w", spec.ID, err)
			}
			output = fmt.Sprintf("<p>Erro ao gerar a seção %s.</p>", spec.Title)
		}
		outputs[spec.ID] = output
		chained = chained + "\n\n=== " + strings.ToUpper(spec.Title) + " ===\n" + output
	}

	return outputs, nil
}

// renderPrompt substitutes the template placeholders.
func renderPrompt(template, studentName, chainedContext string) string {
	prompt := strings.ReplaceAll(template, "{{ALUNO}}", studentName)
	return strings.ReplaceAll(prompt, "{{CONTEXTO}}", chainedContext)
}
