package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const visionPrompt = "Extract all text from this receipt image. " +
	"Return only the raw text, line by line, with no commentary."

// VisionClient extracts receipt text with an OpenAI-compatible vision model.
type VisionClient struct {
	client *openai.Client
	model  string
}

func NewVisionClient(apiKey, baseURL, model string) *VisionClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &VisionClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (v *VisionClient) ExtractText(ctx context.Context, img []byte) (string, error) {
	format, err := ValidateImage(img)
	if err != nil {
		return "", err
	}

	dataURL := fmt.Sprintf("data:image/%s;base64,%s",
		format, base64.StdEncoding.EncodeToString(img))

	resp, err := v.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     v.model,
		MaxTokens: 2048,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: visionPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("vision completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoTextExtracted
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrNoTextExtracted
	}

	slog.DebugContext(ctx, "Extracted text from receipt image",
		"model", v.model,
		"format", format,
		"chars", len(text))

	return text, nil
}
