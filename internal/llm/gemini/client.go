package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pdfqa/internal/llm"
)

// Fixed generation parameters; deliberately not externalized.
const (
	modelName       = "gemini-1.5-flash"
	maxOutputTokens = 800
	temperature     = 0.6
	topP            = 0.9
	callTimeout     = 60 * time.Second
)

// Client implements llm.Client using the Gemini API.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient constructs a Gemini client with the fixed generation and safety
// settings applied to the model handle.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetMaxOutputTokens(maxOutputTokens)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockLowAndAbove},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockLowAndAbove},
	}

	return &Client{client: client, model: model}, nil
}

// Answer sends the document text and the instruction-prefixed question as
// the model input. The document is passed whole; oversized documents fail at
// the provider boundary, there is no chunking and no retry.
func (c *Client) Answer(ctx context.Context, docText, question string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx,
		genai.Text(docText),
		genai.Text(llm.Instruction+question),
	)
	if err != nil {
		return "", mapError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: response has no candidates", llm.ErrInvalidInput)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	answer := sb.String()
	if answer == "" {
		return "", fmt.Errorf("%w: response has no text parts", llm.ErrInvalidInput)
	}
	return answer, nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// mapError folds transport-specific failures into the llm error taxonomy so
// handlers never see provider internals.
func mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", llm.ErrDeadlineExceeded, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 400:
			return fmt.Errorf("%w: %s", llm.ErrInvalidInput, err)
		case 429:
			return fmt.Errorf("%w: %s", llm.ErrQuotaExhausted, err)
		case 503:
			return fmt.Errorf("%w: %s", llm.ErrUnavailable, err)
		case 504:
			return fmt.Errorf("%w: %s", llm.ErrDeadlineExceeded, err)
		}
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.InvalidArgument:
			return fmt.Errorf("%w: %s", llm.ErrInvalidInput, err)
		case codes.ResourceExhausted:
			return fmt.Errorf("%w: %s", llm.ErrQuotaExhausted, err)
		case codes.DeadlineExceeded:
			return fmt.Errorf("%w: %s", llm.ErrDeadlineExceeded, err)
		case codes.Unavailable:
			return fmt.Errorf("%w: %s", llm.ErrUnavailable, err)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %s", llm.ErrUnavailable, err)
	}

	return fmt.Errorf("gemini call: %w", err)
}
