package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ds-tutor/internal/catalog"
)

func loggedIn(t *testing.T) State {
	t.Helper()
	s, err := Apply(State{}, Login{Username: "ada", Role: catalog.RoleDataScientist})
	require.NoError(t, err)
	return s
}

func TestLogin(t *testing.T) {
	s, err := Apply(State{}, Login{Username: "  ada  ", Role: catalog.RoleAdmin})
	require.NoError(t, err)

	assert.True(t, s.LoggedIn)
	assert.Equal(t, "ada", s.Username)
	assert.Equal(t, catalog.RoleAdmin, s.Role)
	assert.Equal(t, catalog.DefaultTopic, s.Topic)
	assert.Equal(t, catalog.DefaultTheme, s.Theme)
}

func TestLogin_Validation(t *testing.T) {
	tests := []struct {
		name    string
		action  Login
		wantErr error
	}{
		{"empty username", Login{Username: "   ", Role: catalog.RoleUser}, ErrInvalidUsername},
		{"unknown role", Login{Username: "ada", Role: "Root"}, ErrInvalidRole},
		{"missing role", Login{Username: "ada"}, ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Apply(State{}, tt.action)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, s.LoggedIn)
		})
	}
}

func TestLogout_ResetsEverything(t *testing.T) {
	s := loggedIn(t)
	s, err := Apply(s, RecordChat{Entry: ChatEntry{Question: "q"}})
	require.NoError(t, err)

	s, err = Apply(s, Logout{})
	require.NoError(t, err)
	assert.Equal(t, State{}, s)
}

func TestActionsRequireLogin(t *testing.T) {
	actions := []Action{
		SelectTopic{Topic: "EDA"},
		SelectTheme{Theme: catalog.ThemeDark},
		ToggleChecklist{Item: "Python Basics"},
		RecordAnalysis{},
		ClearAnalysis{},
		RecordChat{},
	}

	for _, action := range actions {
		t.Run(fmt.Sprintf("%T", action), func(t *testing.T) {
			_, err := Apply(State{}, action)
			assert.ErrorIs(t, err, ErrNotLoggedIn)
		})
	}
}

func TestSelectTopicAndTheme(t *testing.T) {
	s := loggedIn(t)

	next, err := Apply(s, SelectTopic{Topic: "Statistics"})
	require.NoError(t, err)
	assert.Equal(t, "Statistics", next.Topic)
	assert.Equal(t, catalog.DefaultTopic, s.Topic, "input state is not modified")

	_, err = Apply(s, SelectTopic{Topic: "Knitting"})
	assert.ErrorIs(t, err, ErrUnknownTopic)

	next, err = Apply(next, SelectTheme{Theme: catalog.ThemeDark})
	require.NoError(t, err)
	assert.Equal(t, catalog.ThemeDark, next.Theme)

	_, err = Apply(next, SelectTheme{Theme: "Neon"})
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestToggleChecklist(t *testing.T) {
	s := loggedIn(t)

	s1, err := Apply(s, ToggleChecklist{Item: "Regression Models"})
	require.NoError(t, err)
	s2, err := Apply(s1, ToggleChecklist{Item: "Python Basics"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Python Basics", "Regression Models"}, s2.Completed, "kept in catalog order")
	assert.Equal(t, []string{"Regression Models"}, s1.Completed, "earlier state is not modified")
	assert.True(t, s2.HasCompleted("Python Basics"))

	s3, err := Apply(s2, ToggleChecklist{Item: "Python Basics"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Regression Models"}, s3.Completed)

	_, err = Apply(s, ToggleChecklist{Item: "Underwater Basket Weaving"})
	assert.ErrorIs(t, err, ErrUnknownChecklistItem)
}

func TestRecordAndClearAnalysis(t *testing.T) {
	s := loggedIn(t)
	missing := []string{"pandas"}

	s, err := Apply(s, RecordAnalysis{Summary: AnalysisSummary{Score: 0.5, Tier: "moderate", MissingSkills: missing, AnalyzedAt: time.Now()}})
	require.NoError(t, err)
	require.NotNil(t, s.LastAnalysis)
	assert.Equal(t, 0.5, s.LastAnalysis.Score)

	missing[0] = "mutated"
	assert.Equal(t, []string{"pandas"}, s.LastAnalysis.MissingSkills)

	s, err = Apply(s, ClearAnalysis{})
	require.NoError(t, err)
	assert.Nil(t, s.LastAnalysis)
}

func TestRecordChat_BoundedHistory(t *testing.T) {
	s := loggedIn(t)

	for i := 0; i < MaxHistory+5; i++ {
		var err error
		s, err = Apply(s, RecordChat{Entry: ChatEntry{Question: fmt.Sprintf("q%d", i)}})
		require.NoError(t, err)
	}

	assert.Len(t, s.History, MaxHistory)
	assert.Equal(t, "q5", s.History[0].Question)
	assert.Equal(t, fmt.Sprintf("q%d", MaxHistory+4), s.LastPrompt)
}
