package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Mtar786/resume-ats-analyzer/internal/models"
	"github.com/Mtar786/resume-ats-analyzer/internal/services"
)

type AnalyzeHandler struct {
	storageService services.StorageService
	pool           services.AnalysisPool
	maxFileSize    int64
}

func NewAnalyzeHandler(
	storageService services.StorageService,
	pool services.AnalysisPool,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		storageService: storageService,
		pool:           pool,
		maxFileSize:    maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze. It expects a multipart form with a
// "file" part (the resume) and an optional "job_description" text field,
// and responds with the analysis report as JSON.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("%v: please attach a PDF, DOCX or plain text file as 'file'", services.ErrEmptyDocument),
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	jobDescription := c.FormValue("job_description")

	// Stage the upload on disk for the duration of this request
	filename, _, err := h.storageService.SaveUpload(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}
	defer h.storageService.DeleteFile(filename)

	data, err := h.storageService.ReadFile(filename)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read resume file: %v", err),
		})
	}

	doc := models.Document{
		Filename: fileHeader.Filename,
		Format:   models.DetectFormat(fileHeader.Filename),
		Data:     data,
	}

	report, err := h.pool.Submit(c.Context(), doc, jobDescription)
	if err != nil {
		if errors.Is(err, services.ErrDocumentParse) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": fmt.Sprintf("could not parse resume document: %v", err),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to analyze resume: %v", err),
		})
	}

	return c.JSON(report)
}
