// Package openai implements models.CompletionProvider for any endpoint that
// speaks the OpenAI chat-completions protocol: Groq, OpenAI, Azure OpenAI,
// Ollama and vLLM.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/kiranshivaraju/symptomchecker/internal/config"
	"github.com/kiranshivaraju/symptomchecker/pkg/models"
	goopenai "github.com/sashabaranov/go-openai"
)

type Provider struct {
	name   string
	model  string
	client *goopenai.Client
}

// NewProvider creates a provider that talks to cfg.BaseURL with cfg.APIKey.
// name identifies the backend in logs and health output.
func NewProvider(name string, cfg config.OpenAICompatConfig) *Provider {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Provider{
		name:   name,
		model:  cfg.Model,
		client: goopenai.NewClientWithConfig(clientCfg),
	}
}

// NewAzureProvider creates a provider for an Azure OpenAI deployment.
func NewAzureProvider(cfg config.AzureConfig) *Provider {
	clientCfg := goopenai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	if cfg.APIVersion != "" {
		clientCfg.APIVersion = cfg.APIVersion
	}
	return &Provider{
		name:   "azure",
		model:  cfg.Deployment,
		client: goopenai.NewClientWithConfig(clientCfg),
	}
}

func (p *Provider) Name() string  { return p.name }
func (p *Provider) Model() string { return p.model }

// Complete sends req.Prompt as a single user message and returns the content
// of the first choice. A reply with no choices yields an empty string and no
// error.
func (p *Provider) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	chatReq := goopenai.ChatCompletionRequest{
		Model: p.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature:         req.Temperature,
		MaxCompletionTokens: req.MaxTokens,
		TopP:                req.TopP,
		Stream:              false,
	}
	if req.JSONResponse {
		chatReq.ResponseFormat = &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", describeError(err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// describeError keeps the upstream message and status while dropping the SDK
// prefixes.
func describeError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%d %s", apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) && reqErr.Err != nil {
		return fmt.Errorf("%d %s", reqErr.HTTPStatusCode, reqErr.Err)
	}
	return err
}

var _ models.CompletionProvider = (*Provider)(nil)
