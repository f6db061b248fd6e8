package openai

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// Client spricht die OpenAI-Chat-Completions-API über das offizielle SDK an.
// Über BaseURL lassen sich kompatible Endpoints (Azure, Proxies) nutzen.
type Client struct {
	model string
	opts  []option.RequestOption
}

// New erstellt einen Client. apiKey ist Pflicht, baseURL optional.
func New(apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if model == "" {
		return nil, errors.New("model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{model: model, opts: opts}, nil
}

func (c *Client) Name() string {
	return "openai"
}

// GenerateText fragt das Modell im JSON-Object-Modus ab. Temperature und
// Token-Limit sind auf lange, abwechslungsreiche Lesson-Outputs abgestimmt.
func (c *Client) GenerateText(ctx context.Context, system, user string) (string, error) {
	client := openai.NewClient(c.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(16000),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
