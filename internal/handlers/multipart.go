package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"atscribe/resume-analyzer/internal/services"
)

// readPDFText reads an uploaded PDF fully into memory and extracts its text.
// Nothing is written to disk.
func readPDFText(fh *multipart.FileHeader, parser services.PDFParserService) (string, error) {
	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
		return "", fmt.Errorf("only PDF files are supported")
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return parser.ExtractText(data)
}

// resolveJobDescription accepts the job description either as an uploaded PDF
// ("jobDescriptionFile") or as a plain form value ("jobDescription"). The file
// wins when both are present.
func resolveJobDescription(c *fiber.Ctx, parser services.PDFParserService) (string, error) {
	if fh, err := c.FormFile("jobDescriptionFile"); err == nil && fh != nil {
		text, err := readPDFText(fh, parser)
		if err != nil {
			return "", fmt.Errorf("failed to extract job description: %w", err)
		}
		return text, nil
	}

	return c.FormValue("jobDescription"), nil
}
