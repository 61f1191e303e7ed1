package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"alfredoptarigan/ds-tutor/internal/skills"
)

type analyzeOptions struct {
	resume  string
	jobDesc string
	jsonOut bool
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score one resume against a job description",
		Long:  "Extracts skills from a resume (PDF, DOCX or TXT) and a job description, then prints the similarity score, missing skills and recommendations.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.resume, "resume", "r", "", "Path to the resume file (required)")
	cmd.Flags().StringVarP(&opts.jobDesc, "jd", "j", "", "Path to the job description file (required)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Print the report as JSON")

	if err := cmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("jd"); err != nil {
		panic(fmt.Sprintf("failed to mark jd flag as required: %v", err))
	}

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions) error {
	matcher, err := matcherFromFlags(cmd)
	if err != nil {
		return err
	}
	analyzer, parser := newAnalyzer(matcher)

	jobDescription, err := readJobDescription(parser, opts.jobDesc)
	if err != nil {
		return err
	}

	report, err := analyzer.AnalyzeDocument(opts.resume, jobDescription)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.resume, err)
	}

	if opts.jsonOut {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	return writeReport(cmd.OutOrStdout(), report)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

func writeReport(w io.Writer, report *skills.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Similarity Score: %.2f\n", report.Score)
	fmt.Fprintf(&b, "%s\n", report.Message)
	fmt.Fprintf(&b, "Matched skills: %s\n", joinOrNone(report.MatchedSkills))
	fmt.Fprintf(&b, "Missing skills: %s\n", joinOrNone(report.MissingSkills))

	if len(report.Recommendations) > 0 {
		b.WriteString("Recommendations:\n")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
