package narrator

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/monster-game/internal/catalog"
	"google.golang.org/api/option"
)

// Engine asks a Gemini model for dex entries.
type Engine struct {
	client *genai.Client
	model  *genai.GenerativeModel
	cat    *catalog.Catalog
}

func NewEngine(ctx context.Context, apiKey, modelName string, cat *catalog.Catalog) (*Engine, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	return &Engine{
		client: client,
		model:  model,
		cat:    cat,
	}, nil
}

func (e *Engine) Close() {
	e.client.Close()
}

func (e *Engine) Describe(ctx context.Context, sp catalog.Species) (Entry, error) {
	prompt, err := renderPrompt(e.cat, sp)
	if err != nil {
		return Entry{}, err
	}

	resp, err := e.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Entry{}, fmt.Errorf("describe %s: %w", sp.Name, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Entry{}, fmt.Errorf("describe %s: no content returned from Gemini", sp.Name)
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return Entry{}, fmt.Errorf("describe %s: unexpected response type from Gemini", sp.Name)
	}
	return parseEntry(string(text))
}
