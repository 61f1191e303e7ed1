package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/ds-tutor/internal/services"
	"alfredoptarigan/ds-tutor/internal/skills"
)

type rankOptions struct {
	jobDesc string
	workers int
	jsonOut bool
}

// rankedResume is one row of the rank output. Report is nil when the resume
// could not be read.
type rankedResume struct {
	Path   string         `json:"path"`
	Report *skills.Report `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func newRankCmd() *cobra.Command {
	opts := &rankOptions{}

	cmd := &cobra.Command{
		Use:   "rank --jd FILE RESUME...",
		Short: "Rank several resumes against one job description",
		Long:  "Analyzes every resume concurrently and prints them ordered by similarity score, best first. Unreadable resumes are listed last.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.jobDesc, "jd", "j", "", "Path to the job description file (required)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", runtime.NumCPU(), "Maximum number of resumes analyzed at once")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Print the ranking as JSON")

	if err := cmd.MarkFlagRequired("jd"); err != nil {
		panic(fmt.Sprintf("failed to mark jd flag as required: %v", err))
	}

	return cmd
}

func runRank(cmd *cobra.Command, opts *rankOptions, resumes []string) error {
	if opts.workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", opts.workers)
	}

	matcher, err := matcherFromFlags(cmd)
	if err != nil {
		return err
	}
	analyzer, parser := newAnalyzer(matcher)

	jobDescription, err := readJobDescription(parser, opts.jobDesc)
	if err != nil {
		return err
	}

	results, err := rankResumes(cmd, analyzer, jobDescription, resumes, opts.workers)
	if err != nil {
		return err
	}

	if opts.jsonOut {
		return writeJSON(cmd.OutOrStdout(), results)
	}
	return writeRanking(cmd.OutOrStdout(), results)
}

func rankResumes(
	cmd *cobra.Command,
	analyzer services.ResumeAnalyzerService,
	jobDescription string,
	resumes []string,
	workers int,
) ([]rankedResume, error) {
	results := make([]rankedResume, len(resumes))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)

	for i, path := range resumes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i].Path = path
			report, err := analyzer.AnalyzeDocument(path, jobDescription)
			if err != nil {
				if errors.Is(err, services.ErrDocumentUnreadable) {
					results[i].Error = err.Error()
					return nil
				}
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i].Report = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortRanking(results)
	return results, nil
}

// sortRanking orders by score, best first. Ties keep path order and
// unreadable resumes go last.
func sortRanking(results []rankedResume) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if (a.Report == nil) != (b.Report == nil) {
			return a.Report != nil
		}
		if a.Report != nil && a.Report.Score != b.Report.Score {
			return a.Report.Score > b.Report.Score
		}
		return a.Path < b.Path
	})
}

func writeRanking(w io.Writer, results []rankedResume) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tRESUME\tSCORE\tTIER\tMISSING")

	for i, r := range results {
		name := filepath.Base(r.Path)
		if r.Report == nil {
			fmt.Fprintf(tw, "%d\t%s\t-\tunreadable\t-\n", i+1, name)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%s\t%s\n", i+1, name, r.Report.Score, r.Report.Tier, joinOrNone(r.Report.MissingSkills))
	}

	return tw.Flush()
}
