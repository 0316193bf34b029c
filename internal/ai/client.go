// Package ai talks to the hosted language model for semantic search and the
// storefront assistant.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lumina/internal/models"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-3-flash-preview"

// Generator is the part of the genai client used here.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client wraps a Generator with the storefront prompts.
type Client struct {
	gen    Generator
	model  string
	logger *logrus.Logger
}

// NewClient connects to the Gemini API.
func NewClient(ctx context.Context, apiKey, model string, logger *logrus.Logger) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return NewWithGenerator(gc.Models, model, logger), nil
}

// NewWithGenerator builds a Client on top of an existing Generator.
func NewWithGenerator(gen Generator, model string, logger *logrus.Logger) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{gen: gen, model: model, logger: logger}
}

type searchItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Desc string `json:"desc"`
}

// SemanticSearch asks the model which products match query and returns
// their IDs. An empty list is a valid answer.
func (c *Client) SemanticSearch(ctx context.Context, query string, products []models.Product) ([]string, error) {
	inventory := make([]searchItem, 0, len(products))
	for _, p := range products {
		inventory = append(inventory, searchItem{ID: p.ID, Name: p.Name, Desc: p.Description})
	}
	inv, err := json.Marshal(inventory)
	if err != nil {
		return nil, fmt.Errorf("failed to encode inventory: %w", err)
	}

	prompt := fmt.Sprintf("User Query: %q. Identify matching Product IDs from our ecosystem.\n"+
		"Inventory: %s.\nReturn JSON array of IDs only.", query, inv)

	resp, err := c.gen.GenerateContent(ctx, c.model, []*genai.Content{userContent(prompt)}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("semantic search request failed: %w", err)
	}

	text := strings.TrimSpace(responseText(resp))
	if text == "" {
		text = "[]"
	}
	var ids []string
	if err := json.Unmarshal([]byte(text), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode semantic search result: %w", err)
	}
	c.logger.WithFields(logrus.Fields{"query": query, "matches": len(ids)}).Debug("Semantic search completed")
	return ids, nil
}

type chatItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category models.Category `json:"category"`
	Price    float64         `json:"price"`
}

// Chat sends the conversation so far plus message and returns the reply,
// which is empty when the model produced no text.
func (c *Client) Chat(ctx context.Context, message string, history []models.ChatMessage, products []models.Product) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, h := range history {
		contents = append(contents, &genai.Content{
			Role:  string(h.Role),
			Parts: []*genai.Part{{Text: h.Content}},
		})
	}
	contents = append(contents, userContent(message))

	system, err := systemInstruction(products)
	if err != nil {
		return "", err
	}
	resp, err := c.gen.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	})
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	return responseText(resp), nil
}

func systemInstruction(products []models.Product) (string, error) {
	inventory := make([]chatItem, 0, len(products))
	for _, p := range products {
		price, _ := p.Price.Float64()
		inventory = append(inventory, chatItem{ID: p.ID, Name: p.Name, Category: p.Category, Price: price})
	}
	inv, err := json.Marshal(inventory)
	if err != nil {
		return "", fmt.Errorf("failed to encode inventory: %w", err)
	}

	var b strings.Builder
	b.WriteString(`You are Lumina, the Lead Technical Strategist for "Lumina Global".` + "\n")
	b.WriteString("We are an all-in-one platform for digital business success. Our offerings include:\n")
	b.WriteString("1. SaaS & Software: Powerful automation and management tools.\n")
	b.WriteString("2. Website Templates: Professional, secure code for rapid launches.\n")
	b.WriteString("3. Trading Bots: High-performance financial automation (Always include a risk disclaimer).\n")
	b.WriteString("4. E-commerce Website Delivery: Done-for-you store builds in 14 days.\n")
	b.WriteString("5. Cybersecurity Services: Audits, risk assessments, and monitoring.\n\n")
	fmt.Fprintf(&b, "Inventory: %s.\n\n", inv)
	b.WriteString("Your persona: Elite, technically expert, professional, and business-focused.\n")
	b.WriteString("Help users navigate our ecosystem. If they want to scale, suggest SaaS. If they want to launch a store, " +
		"suggest our Bespoke Delivery. If they want passive automation, suggest Trading Bots.\n")
	b.WriteString("Always emphasize trust, innovation, and security.")
	return b.String(), nil
}

func userContent(text string) *genai.Content {
	return &genai.Content{
		Role:  string(models.ChatRoleUser),
		Parts: []*genai.Part{{Text: text}},
	}
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
