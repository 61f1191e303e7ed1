package skills

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallMatcher(t *testing.T, opts ...Option) *Matcher {
	t.Helper()
	vocab, err := NewVocabulary([]string{"python", "pandas"}, []string{"sql"})
	require.NoError(t, err)
	m, err := NewMatcher(vocab, opts...)
	require.NoError(t, err)
	return m
}

func defaultMatcher(t *testing.T, opts ...Option) *Matcher {
	t.Helper()
	m, err := NewMatcher(DefaultVocabulary(), opts...)
	require.NoError(t, err)
	return m
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Python, Pandas; SQL-expert C++ and C# (sqlite3)")
	assert.Equal(t, []string{"python", "pandas", "sql", "expert", "c++", "and", "c#", "sqlite3"}, tokens)
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  ,;  "))
}

func TestExtract(t *testing.T) {
	m := defaultMatcher(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"no vocabulary words", "Looking for a friendly colleague", []string{}},
		{"case insensitive", "PYTHON python Python", []string{"python"}},
		{"punctuation boundaries", "Skills: Python/Django, SQL.", []string{"django", "python", "sql"}},
		{"digits kept in tokens", "Used sqlite3 daily", []string{"sqlite3"}},
		{"multi-word skills are missed", "Machine learning and data analysis", []string{}},
		{"substrings do not match", "pythonic javascript", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Extract(tt.text).Sorted())
		})
	}
}

func TestExtract_PhraseMatching(t *testing.T) {
	m := defaultMatcher(t, WithPhraseMatching(true))

	got := m.Extract("Experience in Machine   Learning, data\nanalysis and Python").Sorted()
	assert.Equal(t, []string{"data analysis", "machine learning", "python"}, got)

	got = m.Extract("full stack development with react").Sorted()
	assert.Equal(t, []string{"full stack development", "react"}, got)
}

func TestExtract_ResultIsSubsetOfVocabulary(t *testing.T) {
	texts := []string{
		"",
		"I know Python and SQL",
		"We need NumPy, Pandas, AI, NLP and a bit of HTML/CSS",
		"Random words with C and Java and json!",
		"Mixed CASE: DjAnGo MongoDB React tkinter pynput",
	}

	for _, phrases := range []bool{false, true} {
		m := defaultMatcher(t, WithPhraseMatching(phrases))
		for _, text := range texts {
			for skill := range m.Extract(text) {
				assert.True(t, m.Vocabulary().Contains(skill), "skill %q not in vocabulary", skill)
			}
		}
	}
}

func TestScore(t *testing.T) {
	m := smallMatcher(t)

	tests := []struct {
		name   string
		resume SkillSet
		job    SkillSet
		want   float64
	}{
		{"empty job skills", NewSkillSet("python"), NewSkillSet(), 0},
		{"both empty", NewSkillSet(), NewSkillSet(), 0},
		{"no overlap", NewSkillSet("sql"), NewSkillSet("python"), 0},
		{"core self match", NewSkillSet("python", "pandas"), NewSkillSet("python", "pandas"), 1},
		{"secondary match counts half", NewSkillSet("sql"), NewSkillSet("sql"), 0.5},
		{"mixed", NewSkillSet("python", "sql"), NewSkillSet("python", "pandas", "sql"), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, m.Score(tt.resume, tt.job), 1e-9)
		})
	}
}

func TestScore_Bounded(t *testing.T) {
	m := defaultMatcher(t)
	all := append(m.Vocabulary().Core(), m.Vocabulary().Secondary()...)

	for i := 0; i <= len(all); i++ {
		resume := NewSkillSet(all[:i]...)
		job := NewSkillSet(all[len(all)-i:]...)
		score := m.Score(resume, job)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestScore_CustomWeights(t *testing.T) {
	m := smallMatcher(t, WithWeights(Weights{Core: 4, Secondary: 3}))
	assert.InDelta(t, 0.75, m.Score(NewSkillSet("sql"), NewSkillSet("sql")), 1e-9)
}

func TestNewMatcher_InvalidWeights(t *testing.T) {
	vocab := DefaultVocabulary()

	_, err := NewMatcher(vocab, WithWeights(Weights{Core: 1, Secondary: 2}))
	assert.ErrorIs(t, err, ErrInvalidWeights)

	_, err = NewMatcher(vocab, WithWeights(Weights{Core: 0, Secondary: 0}))
	assert.ErrorIs(t, err, ErrInvalidWeights)

	for _, w := range []Weights{
		{Core: math.NaN(), Secondary: 1},
		{Core: 2, Secondary: math.NaN()},
		{Core: math.Inf(1), Secondary: 1},
		{Core: math.Inf(1), Secondary: math.Inf(1)},
		{Core: 2, Secondary: math.Inf(-1)},
	} {
		_, err = NewMatcher(vocab, WithWeights(w))
		assert.ErrorIs(t, err, ErrInvalidWeights, "weights %+v", w)
	}

	_, err = NewMatcher(nil)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestAnalyze_ModerateMatch(t *testing.T) {
	m := smallMatcher(t)

	result := m.Analyze("I know Python and SQL", "Looking for Python, Pandas, SQL expert")

	assert.Equal(t, []string{"python", "sql"}, result.ResumeSkills)
	assert.Equal(t, []string{"pandas", "python", "sql"}, result.JobSkills)
	assert.Equal(t, []string{"python", "sql"}, result.MatchedSkills)
	assert.Equal(t, []string{"pandas"}, result.MissingSkills)
	assert.InDelta(t, 0.5, result.Score, 1e-9)
	assert.Equal(t, TierModerate, TierFor(result.Score))
}

func TestAnalyze_JobWithoutSkills(t *testing.T) {
	m := smallMatcher(t)

	result := m.Analyze("I know Python and SQL", "We want a cheerful team player")

	assert.Zero(t, result.Score)
	assert.Empty(t, result.MissingSkills)
	assert.Empty(t, result.JobSkills)
}

func TestAnalyze_IdenticalText(t *testing.T) {
	m := smallMatcher(t)
	text := "Python and Pandas for analytics"

	result := m.Analyze(text, text)

	assert.Empty(t, result.MissingSkills)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
}

func TestAnalyze_EmptyInputs(t *testing.T) {
	m := defaultMatcher(t)

	result := m.Analyze("", "")
	assert.Zero(t, result.Score)
	assert.NotNil(t, result.MissingSkills)
	assert.Empty(t, result.MissingSkills)

	result = m.Analyze("", "Python and SQL")
	assert.Zero(t, result.Score)
	assert.Equal(t, []string{"python", "sql"}, result.MissingSkills)
}

func TestAnalyze_MissingSkillsInvariant(t *testing.T) {
	m := defaultMatcher(t)

	result := m.Analyze(
		"Python developer with React, HTML and CSS",
		"Data role: Python, Pandas, NumPy, SQL, React and MongoDB",
	)

	job := NewSkillSet(result.JobSkills...)
	resume := NewSkillSet(result.ResumeSkills...)
	for _, skill := range result.MissingSkills {
		assert.True(t, job.Has(skill))
		assert.False(t, resume.Has(skill))
	}
	assert.Equal(t, job.Difference(resume).Sorted(), result.MissingSkills)
	assert.Equal(t, []string{"mongodb", "numpy", "pandas", "sql"}, result.MissingSkills)
}
