package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrGenerationUnavailable indicates the model backend is not configured.
	ErrGenerationUnavailable = errors.New("generation service unavailable")
	// ErrGenerationRequest indicates an error during the model API request.
	ErrGenerationRequest = errors.New("generation request failed")
	// ErrGenerationTimeout indicates the per-call ceiling was exceeded.
	ErrGenerationTimeout = errors.New("generation request timed out")
	// ErrGenerationResponse indicates an unusable model response.
	ErrGenerationResponse = errors.New("failed to parse generation response")
)

// sectionTemperature is the fixed creativity knob for report sections.
const sectionTemperature = 0.7

const systemPrompt = `Você é um coach de fitness experiente escrevendo o relatório semanal de um aluno.

Regras:
- Responda sempre em português do Brasil.
- Baseie-se apenas nos dados fornecidos no contexto; não invente números.
- Responda em HTML simples usando apenas <p>, <ul>, <li>, <strong> e <em>.
- Não use markdown, blocos de código ou preâmbulos de conversa.
- Seja direto e concreto; fale com o aluno na segunda pessoa.`

// SectionLLM is the transport boundary for generating one report section.
type SectionLLM interface {
	// Complete sends the rendered section prompt and returns the raw model
	// text. The call carries a fixed timeout ceiling.
	Complete(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient implements SectionLLM using the OpenAI API.
type OpenAIClient struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient creates a new OpenAI client for section generation.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, timeout time.Duration) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}
}

// Complete calls the chat completions API with the fixed section temperature.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", ErrGenerationUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(sectionTemperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", ErrGenerationTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrGenerationResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
