package services

import (
	"errors"
	"fmt"
	"log"

	"alfredoptarigan/ds-tutor/internal/metrics"
	"alfredoptarigan/ds-tutor/internal/skills"
)

// ErrDocumentUnreadable marks a resume whose text could not be extracted; no
// analysis is attempted for it.
var ErrDocumentUnreadable = errors.New("resume could not be read")

type ResumeAnalyzerService interface {
	AnalyzeText(resumeText, jobDescription string) *skills.Report
	AnalyzeDocument(filePath, jobDescription string) (*skills.Report, error)
}

type resumeAnalyzerService struct {
	matcher *skills.Matcher
	parser  DocumentParserService
	metrics *metrics.Metrics
}

func NewResumeAnalyzerService(
	matcher *skills.Matcher,
	parser DocumentParserService,
	m *metrics.Metrics,
) ResumeAnalyzerService {
	return &resumeAnalyzerService{
		matcher: matcher,
		parser:  parser,
		metrics: m,
	}
}

// AnalyzeText implements ResumeAnalyzerService.
func (s *resumeAnalyzerService) AnalyzeText(resumeText, jobDescription string) *skills.Report {
	report := skills.NewReport(s.matcher.Analyze(resumeText, jobDescription))

	s.metrics.AnalysesTotal.WithLabelValues(string(report.Tier)).Inc()
	s.metrics.AnalysisScore.Observe(report.Score)

	return report
}

// AnalyzeDocument implements ResumeAnalyzerService.
func (s *resumeAnalyzerService) AnalyzeDocument(filePath, jobDescription string) (*skills.Report, error) {
	content, err := s.parser.ExtractTextWithMetaData(filePath)
	if err != nil {
		s.metrics.ExtractionFailuresTotal.Inc()
		log.Printf("⚠️  Failed to extract resume text: %v\n", err)
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	log.Printf("📄 Extracted %d pages, %d characters from %s resume\n", content.PageCount, len(content.Text), content.Format)

	return s.AnalyzeText(content.Text, jobDescription), nil
}
