package models

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Role     string `json:"role" validate:"required,tutor_role"`
}

type TopicRequest struct {
	Topic string `json:"topic" validate:"required"`
}

type ThemeRequest struct {
	Theme string `json:"theme" validate:"required"`
}

type AnalyzeTextRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

type ChatRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}
