package ai_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"lumina/internal/ai"
	"lumina/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// MockGenerator is a mock implementation of ai.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, model, contents, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genai.GenerateContentResponse), args.Error(1)
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

var catalog = []models.Product{
	{ID: "s1", Name: "Lumina CRM Enterprise", Category: models.CategorySaaS, Price: decimal.NewFromInt(49), Description: "CRM"},
	{ID: "c1", Name: "Network Audit", Category: models.CategoryCybersecurity, Price: decimal.NewFromInt(1200), Description: "Audit"},
}

func TestSemanticSearch(t *testing.T) {
	ctx := context.Background()
	gen := new(MockGenerator)
	client := ai.NewWithGenerator(gen, "", quietLogger())

	gen.On("GenerateContent", ctx, ai.DefaultModel, mock.MatchedBy(func(c []*genai.Content) bool {
		return len(c) == 1 && c[0].Role == "user" && len(c[0].Parts) == 1
	}), mock.MatchedBy(func(cfg *genai.GenerateContentConfig) bool {
		return cfg.ResponseMIMEType == "application/json" && cfg.ResponseSchema.Type == genai.TypeArray
	})).Return(textResponse(" [\"c1\"] "), nil).Once()

	ids, err := client.SemanticSearch(ctx, "security", catalog)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, ids)
	gen.AssertExpectations(t)
}

func TestSemanticSearch_Failures(t *testing.T) {
	ctx := context.Background()

	gen := new(MockGenerator)
	gen.On("GenerateContent", ctx, "m", mock.Anything, mock.Anything).Return(nil, errors.New("quota")).Once()
	_, err := ai.NewWithGenerator(gen, "m", quietLogger()).SemanticSearch(ctx, "q", catalog)
	assert.Error(t, err)

	gen = new(MockGenerator)
	gen.On("GenerateContent", ctx, "m", mock.Anything, mock.Anything).Return(textResponse("not json"), nil).Once()
	_, err = ai.NewWithGenerator(gen, "m", quietLogger()).SemanticSearch(ctx, "q", catalog)
	assert.Error(t, err)

	gen = new(MockGenerator)
	gen.On("GenerateContent", ctx, "m", mock.Anything, mock.Anything).Return(&genai.GenerateContentResponse{}, nil).Once()
	ids, err := ai.NewWithGenerator(gen, "m", quietLogger()).SemanticSearch(ctx, "q", catalog)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestChat(t *testing.T) {
	ctx := context.Background()
	gen := new(MockGenerator)
	client := ai.NewWithGenerator(gen, "m", quietLogger())

	history := []models.ChatMessage{
		{Role: models.ChatRoleModel, Content: "Hello"},
		{Role: models.ChatRoleUser, Content: "Hi"},
	}

	gen.On("GenerateContent", ctx, "m", mock.MatchedBy(func(c []*genai.Content) bool {
		return len(c) == 3 && c[0].Role == "model" && c[2].Role == "user" && c[2].Parts[0].Text == "Need an audit"
	}), mock.MatchedBy(func(cfg *genai.GenerateContentConfig) bool {
		text := cfg.SystemInstruction.Parts[0].Text
		return strings.Contains(text, `"id":"c1"`) && strings.Contains(text, `"category":"Cybersecurity"`)
	})).Return(textResponse("Try the Network Audit."), nil).Once()

	reply, err := client.Chat(ctx, "Need an audit", history, catalog)
	require.NoError(t, err)
	assert.Equal(t, "Try the Network Audit.", reply)
	gen.AssertExpectations(t)
}

func TestChat_EmptyReply(t *testing.T) {
	ctx := context.Background()
	gen := new(MockGenerator)
	gen.On("GenerateContent", ctx, "m", mock.Anything, mock.Anything).Return(textResponse(""), nil).Once()

	reply, err := ai.NewWithGenerator(gen, "m", quietLogger()).Chat(ctx, "hi", nil, catalog)
	assert.NoError(t, err)
	assert.Empty(t, reply)
}
