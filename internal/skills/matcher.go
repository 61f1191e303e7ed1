package skills

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidWeights = errors.New("invalid skill weights")

// Weights are the points a matched job skill contributes to the score.
type Weights struct {
	Core      float64
	Secondary float64
}

// DefaultWeights counts a matched core skill twice as much as a secondary one.
var DefaultWeights = Weights{Core: 2, Secondary: 1}

// Validate keeps scores inside [0, 1]: a matched skill may never be worth
// more than the per-skill maximum.
func (w Weights) Validate() error {
	if !isFinite(w.Core) || !isFinite(w.Secondary) {
		return fmt.Errorf("%w: weights must be finite (core=%v, secondary=%v)", ErrInvalidWeights, w.Core, w.Secondary)
	}
	if w.Core <= 0 || w.Secondary <= 0 {
		return fmt.Errorf("%w: weights must be positive (core=%v, secondary=%v)", ErrInvalidWeights, w.Core, w.Secondary)
	}
	if w.Secondary > w.Core {
		return fmt.Errorf("%w: secondary weight %v exceeds core weight %v", ErrInvalidWeights, w.Secondary, w.Core)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MatchResult is the outcome of comparing one resume with one job
// description. MissingSkills is always a subset of JobSkills and disjoint
// from ResumeSkills.
type MatchResult struct {
	Score         float64  `json:"score"`
	MissingSkills []string `json:"missing_skills"`
	MatchedSkills []string `json:"matched_skills"`
	ResumeSkills  []string `json:"resume_skills"`
	JobSkills     []string `json:"job_skills"`
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithWeights overrides DefaultWeights.
func WithWeights(w Weights) Option {
	return func(m *Matcher) {
		m.weights = w
	}
}

// WithPhraseMatching enables detection of multi-word vocabulary entries.
func WithPhraseMatching(enabled bool) Option {
	return func(m *Matcher) {
		m.phrases = enabled
	}
}

// Matcher holds only immutable configuration and is safe for concurrent use.
type Matcher struct {
	vocab   *Vocabulary
	weights Weights
	phrases bool
}

func NewMatcher(vocab *Vocabulary, opts ...Option) (*Matcher, error) {
	if vocab == nil || vocab.Size() == 0 {
		return nil, ErrEmptyVocabulary
	}

	m := &Matcher{
		vocab:   vocab,
		weights: DefaultWeights,
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.weights.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Vocabulary returns the vocabulary the matcher extracts from.
func (m *Matcher) Vocabulary() *Vocabulary {
	return m.vocab
}

// Weights returns the validated scoring weights.
func (m *Matcher) Weights() Weights {
	return m.weights
}

// PhraseMatching reports whether multi-word entries are detected.
func (m *Matcher) PhraseMatching() bool {
	return m.phrases
}

// Extract returns the vocabulary skills mentioned in text.
func (m *Matcher) Extract(text string) SkillSet {
	return extract(m.vocab, text, m.phrases)
}

// Score is the weighted share of job skills covered by the resume. It is 0
// when the job description yields no skills.
func (m *Matcher) Score(resumeSkills, jobSkills SkillSet) float64 {
	maxScore := float64(jobSkills.Len()) * m.weights.Core
	if maxScore == 0 {
		return 0
	}

	var weighted float64
	for skill := range jobSkills {
		if !resumeSkills.Has(skill) {
			continue
		}
		if m.vocab.IsCore(skill) {
			weighted += m.weights.Core
		} else {
			weighted += m.weights.Secondary
		}
	}

	return weighted / maxScore
}

// Analyze compares a resume with a job description. Any input, including
// empty strings, produces a result.
func (m *Matcher) Analyze(resumeText, jobText string) MatchResult {
	resumeSkills := m.Extract(resumeText)
	jobSkills := m.Extract(jobText)

	return MatchResult{
		Score:         m.Score(resumeSkills, jobSkills),
		MissingSkills: jobSkills.Difference(resumeSkills).Sorted(),
		MatchedSkills: jobSkills.Intersect(resumeSkills).Sorted(),
		ResumeSkills:  resumeSkills.Sorted(),
		JobSkills:     jobSkills.Sorted(),
	}
}
