package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

var (
	ErrEmptyResponse    = errors.New("no text content in response")
	ErrTutorUnavailable = errors.New("tutor is not configured")
	ErrEmptyPrompt      = errors.New("prompt is empty")
)

// GatewayError is the only failure a TutorGateway reports. It wraps the
// provider error so callers can log the detail and show a generic message.
type GatewayError struct {
	Model string
	Err   error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("tutor gateway (%s): %v", e.Model, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// TutorGateway sends one prompt to the hosted model and returns its text.
// Implementations make exactly one request per call: no retry, no streaming
// and no conversation state.
type TutorGateway interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type geminiTutor struct {
	client            *genai.Client
	modelName         string
	systemInstruction string
	timeout           time.Duration
}

func NewGeminiTutor(apiKey, modelName string, timeout time.Duration, prompts *PromptBuilder) (TutorGateway, error) {
	if apiKey == "" {
		return nil, ErrTutorUnavailable
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiTutor{
		client:            client,
		modelName:         modelName,
		systemInstruction: prompts.SystemInstruction(),
		timeout:           timeout,
	}, nil
}

// Complete implements TutorGateway.
func (g *geminiTutor) Complete(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(g.systemInstruction, genai.RoleUser),
		MaxOutputTokens:   4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", &GatewayError{Model: g.modelName, Err: err}
	}

	if resp == nil {
		return "", &GatewayError{Model: g.modelName, Err: ErrEmptyResponse}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &GatewayError{Model: g.modelName, Err: ErrEmptyResponse}
	}

	return text, nil
}

type disabledTutor struct{}

// NewDisabledTutor returns a gateway that fails every call. It keeps the
// rest of the application usable when no API key is configured.
func NewDisabledTutor() TutorGateway {
	return disabledTutor{}
}

func (disabledTutor) Complete(context.Context, string) (string, error) {
	return "", &GatewayError{Model: "disabled", Err: ErrTutorUnavailable}
}
