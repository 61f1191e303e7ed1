package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"alfredoptarigan/ds-tutor/internal/config"
	"alfredoptarigan/ds-tutor/internal/metrics"
	"alfredoptarigan/ds-tutor/internal/services"
	"alfredoptarigan/ds-tutor/internal/skills"
)

// matcherFromFlags builds the matcher from the persistent root flags.
func matcherFromFlags(cmd *cobra.Command) (*skills.Matcher, error) {
	flags := cmd.Flags()

	vocabPath, err := flags.GetString("vocab")
	if err != nil {
		return nil, err
	}
	phrases, err := flags.GetBool("phrases")
	if err != nil {
		return nil, err
	}
	coreWeight, err := flags.GetFloat64("core-weight")
	if err != nil {
		return nil, err
	}
	secondaryWeight, err := flags.GetFloat64("secondary-weight")
	if err != nil {
		return nil, err
	}

	return config.InitMatcher(config.MatcherConfig{
		VocabularyPath:  vocabPath,
		MatchPhrases:    phrases,
		CoreWeight:      coreWeight,
		SecondaryWeight: secondaryWeight,
	})
}

func newAnalyzer(matcher *skills.Matcher) (services.ResumeAnalyzerService, services.DocumentParserService) {
	parser := services.NewDocumentParserService()
	return services.NewResumeAnalyzerService(matcher, parser, metrics.New()), parser
}

// readJobDescription accepts any document format the parser supports and
// reads anything else as plain text.
func readJobDescription(parser services.DocumentParserService, path string) (string, error) {
	if !services.IsSupportedDocument(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read job description %s: %w", path, err)
		}
		return string(data), nil
	}

	text, err := parser.ExtractText(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description %s: %w", path, err)
	}
	return text, nil
}
