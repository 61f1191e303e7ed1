package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ds-tutor/internal/models"
	"alfredoptarigan/ds-tutor/internal/services"
	"alfredoptarigan/ds-tutor/internal/session"
	"alfredoptarigan/ds-tutor/internal/skills"
)

const missingInputMessage = "Please upload a resume and enter a job description."

type AnalyzeHandler struct {
	store          *session.Store
	analyzer       services.ResumeAnalyzerService
	storageService services.StorageService
	maxFileSize    int64
}

func NewAnalyzeHandler(
	store *session.Store,
	analyzer services.ResumeAnalyzerService,
	storageService services.StorageService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		store:          store,
		analyzer:       analyzer,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleAnalyzeUpload handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyzeUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": missingInputMessage,
		})
	}

	jobDescription := strings.TrimSpace(firstValue(form.Value["job_description"]))
	resumes := form.File["resume"]
	if len(resumes) == 0 || jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": missingInputMessage,
		})
	}

	resume := resumes[0]
	if resume.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filePath, err := h.storageService.SaveUpload(resume, "resume")
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedDocument) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Unsupported resume format. Supported: %s", strings.Join(services.SupportedExtensions, ", ")),
			})
		}
		return fmt.Errorf("failed to save resume: %w", err)
	}
	defer func() {
		if err := h.storageService.Remove(filePath); err != nil {
			log.Printf("⚠️  Failed to remove upload %s: %v\n", filePath, err)
		}
	}()

	report, err := h.analyzer.AnalyzeDocument(filePath, jobDescription)
	if err != nil {
		if errors.Is(err, services.ErrDocumentUnreadable) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"warning": "Could not read text from the uploaded resume. Please upload a text-based PDF, DOCX, or TXT file.",
			})
		}
		return err
	}

	if err := h.record(c, report); err != nil {
		return err
	}

	return c.JSON(models.AnalysisResponse{
		Report:         report,
		ResumeFilename: resume.Filename,
	})
}

// HandleAnalyzeText handles POST /analyze/text
func (h *AnalyzeHandler) HandleAnalyzeText(c *fiber.Ctx) error {
	var req models.AnalyzeTextRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := models.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   missingInputMessage,
			"details": err.Error(),
		})
	}

	report := h.analyzer.AnalyzeText(req.ResumeText, req.JobDescription)

	if err := h.record(c, report); err != nil {
		return err
	}

	return c.JSON(models.AnalysisResponse{Report: report})
}

func (h *AnalyzeHandler) record(c *fiber.Ctx, report *skills.Report) error {
	_, err := h.store.Update(c, session.RecordAnalysis{Summary: session.AnalysisSummary{
		Score:         report.Score,
		Tier:          string(report.Tier),
		MissingSkills: report.MissingSkills,
		AnalyzedAt:    time.Now(),
	}})
	if err != nil {
		return actionError(c, err)
	}
	return nil
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
