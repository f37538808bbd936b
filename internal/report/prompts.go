package report

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ard-guilherme/looper-reports/internal/langfuse"
)

// defaultPrompts are the compiled-in section templates, used when neither
// Langfuse nor the local prompt directory can provide one. Managed copies in
// Langfuse (prompt name "report-section-<id>") take precedence so prompt
// wording can evolve without a deploy.
var defaultPrompts = map[SectionID]string{
	SectionOverview: `Escreva a seção "Visão Geral" do relatório semanal de {{ALUNO}}.
Resuma em 2-3 parágrafos como foi a semana como um todo: treinos, alimentação e sono.

Dados da semana:
{{CONTEXTO}}`,

	SectionNutrition: `Escreva a seção "Análise Nutricional" do relatório semanal de {{ALUNO}}.
Analise calorias, proteína, carboidratos e gordura em relação às metas, comentando a consistência dia a dia.

Dados da semana:
{{CONTEXTO}}`,

	SectionSleep: `Escreva a seção "Análise do Sono" do relatório semanal de {{ALUNO}}.
Comente duração, qualidade e regularidade do sono e o impacto na recuperação.

Dados da semana:
{{CONTEXTO}}`,

	SectionTraining: `Escreva a seção "Análise dos Treinos" do relatório semanal de {{ALUNO}}.
Comente a frequência em relação ao esperado, o volume de séries e a evolução das cargas registradas no diário.

Dados da semana:
{{CONTEXTO}}`,

	SectionDetailedInsights: `Escreva a seção "Insights Detalhados" do relatório semanal de {{ALUNO}}.
Cruze os dados de treino, nutrição e sono e aponte padrões que o aluno talvez não perceba sozinho.
Você pode referenciar as seções anteriores do relatório, já incluídas no contexto.

Dados da semana e seções anteriores:
{{CONTEXTO}}`,

	SectionRecommendations: `Escreva a seção "Recomendações" do relatório semanal de {{ALUNO}}.
Liste de 3 a 5 recomendações práticas e específicas para a próxima semana, coerentes com as análises anteriores.

Dados da semana e seções anteriores:
{{CONTEXTO}}`,

	SectionConclusion: `Escreva a seção "Conclusão" do relatório semanal de {{ALUNO}}.
Feche o relatório em um parágrafo motivador e honesto, retomando o ponto mais importante da semana.

Dados da semana e seções anteriores:
{{CONTEXTO}}`,
}

// LangfusePrompts resolves section templates through the Langfuse prompt
// API, falling back to a local prompt directory and finally to the
// compiled-in defaults.
type LangfusePrompts struct {
	BaseURL   string
	PublicKey string
	SecretKey string
	PromptDir string
}

func (p *LangfusePrompts) SectionPrompt(ctx context.Context, id SectionID) (string, error) {
	fallback, ok := defaultPrompts[id]
	if !ok {
		return "", fmt.Errorf("no prompt template for section %q", id)
	}

	prompt, err := langfuse.FetchPrompt(ctx, langfuse.PromptRequest{
		BaseURL:   p.BaseURL,
		PublicKey: p.PublicKey,
		SecretKey: p.SecretKey,
		Name:      "report-section-" + string(id),
		Label:     "production",
		CachePath: filepath.Join(p.PromptDir, string(id)+".txt"),
	})
	if err != nil || prompt == "" {
		return fallback, nil
	}
	return prompt, nil
}

// StaticPrompts serves the compiled-in templates only; used by the prompt
// check script and tests.
type StaticPrompts struct{}

func (StaticPrompts) SectionPrompt(_ context.Context, id SectionID) (string, error) {
	prompt, ok := defaultPrompts[id]
	if !ok {
		return "", fmt.Errorf("no prompt template for section %q", id)
	}
	return prompt, nil
}
