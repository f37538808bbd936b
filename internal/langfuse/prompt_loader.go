package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PromptRequest describes one managed prompt lookup. CachePath, when set,
// names a local file used both as a write-through cache and as the fallback
// when the Langfuse API is unreachable.
type PromptRequest struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	Name      string
	Label     string
	CachePath string
}

var errPromptAPIDisabled = errors.New("langfuse prompt API disabled")

// FetchPrompt resolves a managed prompt, preferring the Langfuse prompt API
// and falling back to the cached local copy.
func FetchPrompt(ctx context.Context, req PromptRequest) (string, error) {
	if req.Name == "" {
		return readCachedPrompt(req.CachePath)
	}

	if prompt, err := fetchManagedPrompt(ctx, req); err == nil {
		if req.CachePath != "" {
			if err := cachePrompt(req.CachePath, prompt); err != nil {
				log.Printf("[langfuse] failed to cache prompt %s locally: %v", req.Name, err)
			}
		}
		return prompt, nil
	} else if !errors.Is(err, errPromptAPIDisabled) {
		log.Printf("[langfuse] prompt fetch failed for %s: %v", req.Name, err)
	}

	return readCachedPrompt(req.CachePath)
}

func fetchManagedPrompt(ctx context.Context, req PromptRequest) (string, error) {
	if req.BaseURL == "" || req.PublicKey == "" || req.SecretKey == "" {
		return "", errPromptAPIDisabled
	}

	baseURL := strings.TrimSuffix(req.BaseURL, "/")
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(req.Name)
	query := parsed.Query()
	if req.Label != "" {
		query.Set("label", req.Label)
	}
	parsed.RawQuery = query.Encode()

	requestCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(req.PublicKey, req.SecretKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("decode Langfuse prompt response: %w", err)
	}

	switch promptResp.Type {
	case "", "text":
		var textPrompt string
		if err := json.Unmarshal(promptResp.Prompt, &textPrompt); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return textPrompt, nil
	case "chat":
		// Section prompts are authored as text, but a managed copy may be
		// converted to chat form in the Langfuse UI. Flatten it back.
		var chatMessages []chatPromptMessage
		if err := json.Unmarshal(promptResp.Prompt, &chatMessages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return flattenChatMessages(chatMessages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}
}

type chatPromptMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

func flattenChatMessages(messages []chatPromptMessage) string {
	var builder strings.Builder
	for _, msg := range messages {
		content := chatMessageContent(msg)
		if content == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		role := msg.Role
		if role == "" {
			role = "message"
		}
		builder.WriteString(strings.ToUpper(role))
		builder.WriteString(": ")
		builder.WriteString(content)
	}
	return builder.String()
}

func chatMessageContent(msg chatPromptMessage) string {
	switch msg.Type {
	case "placeholder":
		if msg.Name != "" {
			return "{{" + msg.Name + "}}"
		}
		return ""
	default:
		return msg.Content
	}
}

func readCachedPrompt(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no cached prompt file configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read cached prompt file: %w", err)
	}
	return string(data), nil
}

func cachePrompt(path, prompt string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
