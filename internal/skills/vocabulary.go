// Package skills extracts keyword skills from free text and scores a resume
// against a job description using a fixed, weighted vocabulary.
package skills

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrEmptyVocabulary = errors.New("vocabulary has no skills")

var defaultCoreSkills = []string{
	"python", "pandas", "numpy", "sql", "django", "nlp", "ai",
	"machine learning", "data analysis", "data visualization",
}

var defaultSecondarySkills = []string{
	"java", "c", "html", "css", "sqlite3", "bootstrap", "mongodb",
	"tkinter", "pynput", "json", "react", "full stack development", "mern",
	"web development", "backend development", "frontend development",
	"database management", "artificial intelligence",
	"natural language processing", "data science", "data engineering",
}

// Vocabulary is the immutable set of recognized skills, split into core
// skills (weighted higher) and secondary skills.
type Vocabulary struct {
	core      map[string]struct{}
	secondary map[string]struct{}
	maxWords  int
}

// vocabularyFile is the on-disk YAML layout of a vocabulary.
type vocabularyFile struct {
	Core      []string `yaml:"core"`
	Secondary []string `yaml:"secondary"`
}

// NewVocabulary normalizes the given skills with Tokenize and builds a
// vocabulary. A skill listed in both sets is treated as core.
func NewVocabulary(core, secondary []string) (*Vocabulary, error) {
	v := &Vocabulary{
		core:      make(map[string]struct{}, len(core)),
		secondary: make(map[string]struct{}, len(secondary)),
	}

	for _, s := range core {
		skill, err := normalizeSkill(s)
		if err != nil {
			return nil, fmt.Errorf("invalid core skill: %w", err)
		}
		v.core[skill] = struct{}{}
		v.trackWords(skill)
	}

	for _, s := range secondary {
		skill, err := normalizeSkill(s)
		if err != nil {
			return nil, fmt.Errorf("invalid secondary skill: %w", err)
		}
		if _, isCore := v.core[skill]; isCore {
			continue
		}
		v.secondary[skill] = struct{}{}
		v.trackWords(skill)
	}

	if v.Size() == 0 {
		return nil, ErrEmptyVocabulary
	}

	return v, nil
}

// DefaultVocabulary returns the built-in data science vocabulary.
func DefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(defaultCoreSkills, defaultSecondarySkills)
	if err != nil {
		panic(fmt.Sprintf("default vocabulary is invalid: %v", err))
	}
	return v
}

// ParseVocabulary reads a YAML document with `core` and `secondary` lists.
func ParseVocabulary(data []byte) (*Vocabulary, error) {
	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}
	return NewVocabulary(file.Core, file.Secondary)
}

// LoadVocabulary reads a vocabulary YAML file from disk.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	v, err := ParseVocabulary(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Contains reports whether skill is a vocabulary entry. The lookup is exact;
// callers are expected to pass lowercase text.
func (v *Vocabulary) Contains(skill string) bool {
	return v.IsCore(skill) || v.isSecondary(skill)
}

// IsCore reports whether skill is a core entry.
func (v *Vocabulary) IsCore(skill string) bool {
	_, ok := v.core[skill]
	return ok
}

func (v *Vocabulary) isSecondary(skill string) bool {
	_, ok := v.secondary[skill]
	return ok
}

// Core returns the core skills in sorted order.
func (v *Vocabulary) Core() []string {
	return sortedKeys(v.core)
}

// Secondary returns the secondary skills in sorted order.
func (v *Vocabulary) Secondary() []string {
	return sortedKeys(v.secondary)
}

// Size is the number of distinct skills across both sets.
func (v *Vocabulary) Size() int {
	return len(v.core) + len(v.secondary)
}

// MaxWords is the word count of the longest vocabulary entry.
func (v *Vocabulary) MaxWords() int {
	return v.maxWords
}

// MarshalYAML writes the vocabulary back in the file layout ParseVocabulary
// accepts.
func (v *Vocabulary) MarshalYAML() (interface{}, error) {
	return vocabularyFile{
		Core:      v.Core(),
		Secondary: v.Secondary(),
	}, nil
}

func (v *Vocabulary) trackWords(skill string) {
	if n := len(strings.Fields(skill)); n > v.maxWords {
		v.maxWords = n
	}
}

// normalizeSkill splits an entry the same way text is tokenized, so
// "scikit-learn" is stored as "scikit learn".
func normalizeSkill(s string) (string, error) {
	skill := strings.Join(Tokenize(s), " ")
	if skill == "" {
		return "", fmt.Errorf("skill entry %q has no words", s)
	}
	return skill, nil
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
