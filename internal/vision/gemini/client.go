package gemini

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"valor-backend/internal/imaging"
	"valor-backend/internal/vision"
)

const defaultModel = "gemini-2.5-flash"

// Client implements vision.Client using the Google Gemini API.
type Client struct {
	apiKey string
	model  string
}

// NewClient constructs a new Gemini vision client. An empty API key is
// allowed; calls then fail with vision.ErrNotConfigured.
func NewClient(apiKey, model string) *Client {
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	return &Client{
		apiKey: strings.TrimSpace(apiKey),
		model:  model,
	}
}

// Name identifies the backend in reports and logs.
func (c *Client) Name() string { return "gemini" }

// Complete sends one image and one prompt and returns the raw model text.
func (c *Client) Complete(ctx context.Context, img image.Image, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", vision.ErrNotConfigured
	}

	jpegBytes, err := imaging.EncodeJPEG(img)
	if err != nil {
		return "", err
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(c.model)
	m.SetTemperature(0.2)
	m.SetMaxOutputTokens(500)

	resp, err := m.GenerateContent(ctx,
		genai.Text(prompt),
		&genai.Blob{MIMEType: "image/jpeg", Data: jpegBytes},
	)
	if err != nil {
		return "", fmt.Errorf("gemini error: %w", err)
	}

	text := firstText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini response empty content")
	}
	return text, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				if s := strings.TrimSpace(string(t)); s != "" {
					return s
				}
			}
		}
	}
	return ""
}

var _ vision.Client = (*Client)(nil)
