package services

import (
	"context"
	"log"
	"time"

	"alfredoptarigan/ds-tutor/internal/metrics"
)

// TutorFailureMessage is what the user sees whenever the model call fails.
const TutorFailureMessage = "The AI tutor could not generate a valid response. Please try again with a different query."

type TutorAnswer struct {
	Question string        `json:"question"`
	Answer   string        `json:"answer,omitempty"`
	Error    string        `json:"error,omitempty"`
	Latency  time.Duration `json:"-"`
}

func (a *TutorAnswer) Failed() bool {
	return a.Error != ""
}

// TutorService turns one student question into one gateway call.
type TutorService interface {
	Ask(ctx context.Context, question string) (*TutorAnswer, error)
}

type tutorService struct {
	gateway TutorGateway
	prompts *PromptBuilder
	metrics *metrics.Metrics
}

func NewTutorService(gateway TutorGateway, prompts *PromptBuilder, m *metrics.Metrics) TutorService {
	return &tutorService{
		gateway: gateway,
		prompts: prompts,
		metrics: m,
	}
}

// Ask returns an error only for an invalid question. Gateway failures are
// reported inside the answer with a generic message.
func (s *tutorService) Ask(ctx context.Context, question string) (*TutorAnswer, error) {
	prompt, err := s.prompts.BuildQuestion(question)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	text, err := s.gateway.Complete(ctx, prompt)
	latency := time.Since(start)
	s.metrics.ChatLatency.Observe(latency.Seconds())

	answer := &TutorAnswer{Question: prompt, Latency: latency}
	if err != nil {
		log.Printf("❌ Tutor request failed after %s: %v\n", latency, err)
		s.metrics.ChatRequestsTotal.WithLabelValues("error").Inc()
		answer.Error = TutorFailureMessage
		return answer, nil
	}

	s.metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()
	answer.Answer = text
	return answer, nil
}
