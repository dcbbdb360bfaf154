// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ai drafts knowledge-base articles with OpenAI. Drafts are created
// unpublished; an editor reviews before anything goes live.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/rackline/rackline-go/internal/util"
)

// DraftInput contains the editor's input for article drafting.
type DraftInput struct {
	Topic          string `json:"topic"`
	TargetAudience string `json:"targetAudience"`
	Tone           string `json:"tone"`
	KeyPoints      string `json:"keyPoints"`
	Category       string `json:"category"`
}

// Draft contains the generated article fields.
type Draft struct {
	Title   string   `json:"title"`
	Slug    string   `json:"slug"`
	Excerpt string   `json:"excerpt"`
	Body    string   `json:"body"`
	Tags    []string `json:"tags"`
}

// Generator drafts articles through the OpenAI chat completions API.
type Generator struct {
	client openai.Client
	model  string
}

// NewGenerator creates a generator with the given API key and model.
func NewGenerator(apiKey, model string) *Generator {
	return &Generator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// GenerateDraft produces an article draft for the given input.
func (g *Generator) GenerateDraft(ctx context.Context, input DraftInput) (*Draft, error) {
	if strings.TrimSpace(input.Topic) == "" {
		return nil, fmt.Errorf("topic is required")
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildUserPrompt(input)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned")
	}

	return parseDraft(resp.Choices[0].Message.Content)
}

const systemPrompt = `You are a content writer for an IT infrastructure reseller specializing in servers, storage, and networking hardware.

You must respond with a valid JSON object (no markdown code fences, no extra text) with exactly these fields:

{
  "title": "An engaging, accurate title",
  "slug": "url-friendly-slug",
  "excerpt": "One-sentence summary under 200 characters",
  "body": "Full article in Markdown. Minimum 400 words, with ## section headings.",
  "tags": ["3-6", "lowercase", "tags"]
}

Important rules:
- Stay technically accurate about server and networking hardware
- The slug must be lowercase with hyphens and no special characters
- Do not use a top-level # heading (the title is rendered separately)
- Respond ONLY with the JSON object, no other text`

// buildUserPrompt creates the user prompt for article drafting.
func buildUserPrompt(input DraftInput) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Write an article about: %s\n\n", input.Topic)

	if input.TargetAudience != "" {
		fmt.Fprintf(&sb, "Target audience: %s\n", input.TargetAudience)
	}
	if input.Tone != "" {
		fmt.Fprintf(&sb, "Tone: %s\n", input.Tone)
	}
	if input.KeyPoints != "" {
		fmt.Fprintf(&sb, "Key points to cover:\n%s\n", input.KeyPoints)
	}
	if input.Category != "" {
		fmt.Fprintf(&sb, "Article category: %s\n", input.Category)
	}

	return sb.String()
}

// parseDraft decodes the model's JSON response, tolerating the code fences
// some models add despite instructions.
func parseDraft(content string) (*Draft, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var draft Draft
	if err := json.Unmarshal([]byte(content), &draft); err != nil {
		return nil, fmt.Errorf("decoding draft: %w", err)
	}

	if draft.Title == "" || draft.Body == "" {
		return nil, fmt.Errorf("draft is missing title or body")
	}
	if !util.IsValidSlug(draft.Slug) {
		draft.Slug = util.Slugify(draft.Title)
	}

	return &draft, nil
}
