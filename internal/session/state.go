// Package session models the per-user tutor state. State changes go through
// the pure Apply function; Store only persists the result between requests.
package session

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"alfredoptarigan/ds-tutor/internal/catalog"
)

// MaxHistory bounds the chat transcript kept for display.
const MaxHistory = 20

var (
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrInvalidUsername      = errors.New("username is required")
	ErrInvalidRole          = errors.New("unknown user type")
	ErrUnknownTopic         = errors.New("unknown topic")
	ErrUnknownTheme         = errors.New("unknown theme")
	ErrUnknownChecklistItem = errors.New("unknown checklist item")
)

type AnalysisSummary struct {
	Score         float64   `json:"score"`
	Tier          string    `json:"tier"`
	MissingSkills []string  `json:"missing_skills"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
}

// ChatEntry is one question and its outcome. It is never sent back to the
// model.
type ChatEntry struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer,omitempty"`
	Error    string    `json:"error,omitempty"`
	AskedAt  time.Time `json:"asked_at"`
}

type State struct {
	LoggedIn     bool             `json:"logged_in"`
	Username     string           `json:"username,omitempty"`
	Role         string           `json:"role,omitempty"`
	Topic        string           `json:"topic,omitempty"`
	Theme        string           `json:"theme,omitempty"`
	Completed    []string         `json:"completed,omitempty"`
	LastAnalysis *AnalysisSummary `json:"last_analysis,omitempty"`
	LastPrompt   string           `json:"last_prompt,omitempty"`
	History      []ChatEntry      `json:"history,omitempty"`
}

// HasCompleted reports whether a checklist item is ticked.
func (s State) HasCompleted(item string) bool {
	return slices.Contains(s.Completed, item)
}

// Action is a state transition.
type Action interface {
	apply(State) (State, error)
}

// Apply returns the state that results from action. The input state is
// never modified.
func Apply(s State, action Action) (State, error) {
	return action.apply(s)
}

type Login struct {
	Username string
	Role     string
}

func (a Login) apply(State) (State, error) {
	username := strings.TrimSpace(a.Username)
	if username == "" {
		return State{}, ErrInvalidUsername
	}
	if !catalog.IsRole(a.Role) {
		return State{}, fmt.Errorf("%w: %q", ErrInvalidRole, a.Role)
	}

	return State{
		LoggedIn: true,
		Username: username,
		Role:     a.Role,
		Topic:    catalog.DefaultTopic,
		Theme:    catalog.DefaultTheme,
	}, nil
}

type Logout struct{}

func (Logout) apply(State) (State, error) {
	return State{}, nil
}

type SelectTopic struct {
	Topic string
}

func (a SelectTopic) apply(s State) (State, error) {
	if !s.LoggedIn {
		return s, ErrNotLoggedIn
	}
	if !catalog.IsTopic(a.Topic) {
		return s, fmt.Errorf("%w: %q", ErrUnknownTopic, a.Topic)
	}
	s.Topic = a.Topic
	return s, nil
}

type SelectTheme struct {
	Theme string
}

func (a SelectTheme) apply(s State) (State, error) {
	if !s.LoggedIn {
		return s, ErrNotLoggedIn
	}
	if !catalog.IsTheme(a.Theme) {
		return s, fmt.Errorf("%w: %q", ErrUnknownTheme, a.Theme)
	}
	s.Theme = a.Theme
	return s, nil
}

// ToggleChecklist marks an item done or, when already done, not done.
type ToggleChecklist struct {
	Item string
}

func (a ToggleChecklist) apply(s State) (State, error) {
	if !s.LoggedIn {
		return s, ErrNotLoggedIn
	}
	if catalog.ChecklistIndex(a.Item) < 0 {
		return s, fmt.Errorf("%w: %q", ErrUnknownChecklistItem, a.Item)
	}

	completed := make([]string, 0, len(s.Completed)+1)
	found := false
	for _, item := range s.Completed {
		if item == a.Item {
			found = true
			continue
		}
		completed = append(completed, item)
	}
	if !found {
		completed = append(completed, a.Item)
	}
	slices.SortFunc(completed, func(x, y string) int {
		return catalog.ChecklistIndex(x) - catalog.ChecklistIndex(y)
	})

	s.Completed = completed
	return s, nil
}

type RecordAnalysis struct {
	Summary AnalysisSummary
}

func (a RecordAnalysis) apply(s State) (State, error) {
	if !s.LoggedIn {
		return s, ErrNotLoggedIn
	}
	summary := a.Summary
	summary.MissingSkills = slices.Clone(a.Summary.MissingSkills)
	s.LastAnalysis = &summary
	return s, nil
}

type ClearAnalysis struct{}

func (ClearAnalysis) apply(s State) (State, error) {
	if !s.LoggedIn {
		return s, ErrNotLoggedIn
	}
	s.LastAnalysis = nil
	return s, nil
}

// RecordChat appends to the transcript, dropping the oldest entries beyond
// MaxHistory.
type RecordChat struct {
	Entry ChatEntry
}

func (a RecordChat) apply(s State) (State, error) {
	if !s.LoggedIn {
		return s, ErrNotLoggedIn
	}

	history := make([]ChatEntry, 0, len(s.History)+1)
	history = append(history, s.History...)
	history = append(history, a.Entry)
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}

	s.History = history
	s.LastPrompt = a.Entry.Question
	return s, nil
}
