package services

import (
	"errors"
	"fmt"
	"strings"
)

const tutorSystemInstruction = `You are a helpful AI Data Science Tutor. Students will ask you doubts related to various topics in Data Science, including Machine Learning, Statistics, Data Analysis, and Data Visualization. Your role is to provide clear, detailed, and accurate explanations to help students understand and solve their problems.

When responding:
1. Start with a side heading named "Topic Overview" to briefly introduce the topic.
2. If the student's question involves a mistake or error, provide a "Bug Report" explaining the issue.
3. Provide a "Solution" or "Correct Approach" to address the problem.
4. Include a detailed explanation under the heading "Explanation" to help the student understand the concept.
5. Use examples, analogies, and visual descriptions (if applicable) to make the explanation more engaging and easier to understand.
6. If the student asks a question outside the Data Science domain, politely decline and guide them to ask a question related to Data Science.

Always ensure your responses are structured, professional, and easy to follow.`

// MaxPromptLength caps a single question sent to the model.
const MaxPromptLength = 8000

var ErrPromptTooLong = errors.New("prompt is too long")

type PromptBuilder struct {
	systemInstruction string
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{systemInstruction: tutorSystemInstruction}
}

// SystemInstruction is the fixed persona sent with every request.
func (pb *PromptBuilder) SystemInstruction() string {
	return pb.systemInstruction
}

// BuildQuestion validates a student question. The text reaches the model
// verbatim apart from surrounding whitespace.
func (pb *PromptBuilder) BuildQuestion(question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyPrompt
	}
	if len([]rune(question)) > MaxPromptLength {
		return "", fmt.Errorf("%w: at most %d characters", ErrPromptTooLong, MaxPromptLength)
	}
	return question, nil
}
