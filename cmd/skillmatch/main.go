// Package main provides skillmatch, a command line front end for the resume
// skill matcher.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "skillmatch",
		Short:         "Score resumes against a job description",
		Long:          "skillmatch extracts data science skills from resumes and job descriptions and scores how well they match.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("vocab", os.Getenv("VOCABULARY_PATH"), "Path to a vocabulary YAML file (default: built-in vocabulary)")
	root.PersistentFlags().Bool("phrases", false, "Also match multi-word skills such as \"machine learning\"")
	root.PersistentFlags().Float64("core-weight", 2, "Weight of a matched core skill")
	root.PersistentFlags().Float64("secondary-weight", 1, "Weight of a matched secondary skill")

	root.AddCommand(newAnalyzeCmd(), newRankCmd(), newVocabCmd())
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
