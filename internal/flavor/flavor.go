// Package flavor produces the one-line taunt shown on the battle preview.
// A Gemini-backed generator is used when an API key is configured; otherwise
// Static falls back to the opponent's canned line.
package flavor

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/sketchblossom/sketch-blossom/internal/models"
)

//go:embed prompts/encounter_flavor.txt
var flavorPrompt string

// Generator supplies flavor text for a previewed encounter.
type Generator interface {
	FlavorText(ctx context.Context, enc models.EncounterRecord) (string, error)
}

type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
	tmpl   *template.Template
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("encounter_flavor").Parse(flavorPrompt)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Gemini{
		client: client,
		model:  client.GenerativeModel("gemini-2.5-flash"),
		tmpl:   tmpl,
	}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

func (g *Gemini) FlavorText(ctx context.Context, enc models.EncounterRecord) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Name       string
		Element    models.Element
		Category   models.Category
		Difficulty int
	}{
		Name:       enc.Name,
		Element:    enc.Element,
		Category:   enc.Category,
		Difficulty: enc.Difficulty,
	}
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(buf.String()))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}

	clean := strings.TrimSpace(string(text))
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, `"`)
	if line, _, found := strings.Cut(clean, "\n"); found {
		clean = line
	}
	return strings.TrimSpace(clean), nil
}

// Static returns the roster's own flavor line, or a canned per-element line
// when the roster has none.
type Static struct{}

var (
	fireLines = []string{
		"A fierce plant warrior burning with determination!",
		"This blazing bloom won't go down without a fight!",
		"Feel the heat of battle against this fiery foe!",
	}
	waterLines = []string{
		"A calm yet powerful plant waiting to strike!",
		"This aquatic bloom flows with ancient wisdom!",
		"Dive into battle against this mysterious water guardian!",
	}
	grassLines = []string{
		"A resilient plant rooted in strength!",
		"This verdant warrior draws power from the earth!",
		"Nature's champion stands ready to defend its territory!",
	}
)

func (Static) FlavorText(_ context.Context, enc models.EncounterRecord) (string, error) {
	if enc.Flavor != "" {
		return enc.Flavor, nil
	}

	var lines []string
	switch enc.Element {
	case models.ElementWater:
		lines = waterLines
	case models.ElementGrass:
		lines = grassLines
	default:
		lines = fireLines
	}
	return lines[len(enc.Name)%len(lines)], nil
}
