package categorize

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"bankstmt/pdf2ledger/internal/logging"
)

// Suggester proposes a category for a narration the rule set could not
// place. Implementations call external services and may fail; callers
// must treat a failure as "no suggestion".
type Suggester interface {
	Suggest(ctx context.Context, description string) (string, error)
}

// GeminiSuggester asks the Gemini API to place a narration into one of
// the known categories.
type GeminiSuggester struct {
	client     *genai.Client
	model      string
	categories []string
	log        logging.Logger
}

// NewGeminiSuggester dials the Gemini API. The categories slice bounds
// the answer space; the model is told to pick from it verbatim.
func NewGeminiSuggester(ctx context.Context, apiKey, model string, categories []string, log logging.Logger) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini suggester: no API key configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini suggester: %w", err)
	}
	return &GeminiSuggester{
		client:     client,
		model:      model,
		categories: categories,
		log:        log,
	}, nil
}

func (g *GeminiSuggester) Suggest(ctx context.Context, description string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0)

	prompt := fmt.Sprintf(
		"Classify this Indian bank statement narration into exactly one of the following categories. "+
			"Answer with the category name only, nothing else.\n\nCategories: %s\n\nNarration: %s",
		strings.Join(g.categories, ", "), description)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini suggester: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini suggester: empty response")
	}

	var answer string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			answer += string(text)
		}
	}
	answer = strings.TrimSpace(answer)

	g.log.Debug("gemini category suggestion",
		logging.Field{Key: logging.FieldCategory, Value: answer})

	for _, c := range g.categories {
		if strings.EqualFold(c, answer) {
			return c, nil
		}
	}
	return "", fmt.Errorf("gemini suggester: unknown category %q", answer)
}

// Close releases the API client.
func (g *GeminiSuggester) Close() error {
	return g.client.Close()
}
