package config

import (
	"fmt"
	"log"

	"alfredoptarigan/ds-tutor/internal/skills"
)

// InitMatcher builds the skill matcher from the matcher settings, falling
// back to the built-in vocabulary when no file is configured.
func InitMatcher(cfg MatcherConfig) (*skills.Matcher, error) {
	vocab := skills.DefaultVocabulary()
	if cfg.VocabularyPath != "" {
		loaded, err := skills.LoadVocabulary(cfg.VocabularyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
		vocab = loaded
		log.Printf("✅ Vocabulary loaded from %s (%d skills)\n", cfg.VocabularyPath, vocab.Size())
	}

	matcher, err := skills.NewMatcher(
		vocab,
		skills.WithWeights(skills.Weights{Core: cfg.CoreWeight, Secondary: cfg.SecondaryWeight}),
		skills.WithPhraseMatching(cfg.MatchPhrases),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill matcher: %w", err)
	}

	return matcher, nil
}
