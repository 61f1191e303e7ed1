package models

import (
	"alfredoptarigan/ds-tutor/internal/catalog"
	"alfredoptarigan/ds-tutor/internal/session"
	"alfredoptarigan/ds-tutor/internal/skills"
)

type LoginResponse struct {
	Message string        `json:"message"`
	Session session.State `json:"session"`
}

type AnalysisResponse struct {
	*skills.Report
	ResumeFilename string `json:"resume_filename,omitempty"`
}

type ChatResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Error    string `json:"error,omitempty"`
}

type ChecklistItem struct {
	Item      string `json:"item"`
	Completed bool   `json:"completed"`
}

type DashboardResponse struct {
	Greeting     string                   `json:"greeting"`
	Role         string                   `json:"role"`
	RoleMessage  string                   `json:"role_message"`
	Topic        string                   `json:"topic"`
	Theme        string                   `json:"theme"`
	Topics       []string                 `json:"topics"`
	Themes       []string                 `json:"themes"`
	Checklist    []ChecklistItem          `json:"checklist"`
	DailyTip     string                   `json:"daily_tip"`
	Tools        []catalog.Tool           `json:"tools"`
	Resources    []catalog.Resource       `json:"resources"`
	Shortcuts    []catalog.Shortcut       `json:"shortcuts"`
	LastAnalysis *session.AnalysisSummary `json:"last_analysis,omitempty"`
}

type VocabularyResponse struct {
	Core            []string `json:"core"`
	Secondary       []string `json:"secondary"`
	CoreWeight      float64  `json:"core_weight"`
	SecondaryWeight float64  `json:"secondary_weight"`
	PhraseMatching  bool     `json:"phrase_matching"`
}
